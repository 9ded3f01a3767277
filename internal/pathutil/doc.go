// Package pathutil provides helpers for naming locations inside OpenAPI
// documents and for validating output paths.
//
// [PathBuilder] tracks the location of a graph walk with push/pop
// semantics and only allocates the final string when a location is
// reported:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("paths")
//	path.Push("/pets")
//	path.Push("get")
//	path.Push("parameters")
//	path.PushKey("status") // paths./pets.get.parameters[status]
//
// [ResolveOutputPath] cleans a user-supplied output file path and rejects
// symlinks, directories and, unless asked, the input document itself.
package pathutil
