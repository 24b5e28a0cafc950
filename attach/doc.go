/*
Package attach manages handlers for all text displays of a scene.

Hosts with a scene graph, such as game editors, hold many text displays,
which come and go as the scene is edited. A Registry attaches a
detector.Handler to every display it has not seen before, identified by a
stable integer ID. Displays which already own a handler are left alone.

The set of known IDs is rebuilt from the live scene on every structural
change notification (HierarchyChanged) and, additionally, invalidated after
a maximum age.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–25 Norbert Pillmayer <norbert@pillmayer.com>

*/
package attach

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arabtext.attach'.
func tracer() tracing.Trace {
	return tracing.Select("arabtext.attach")
}
