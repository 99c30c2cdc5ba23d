// Package emitter writes generated files to disk.
//
// Every emitted file is assembled from up to three newline-joined
// sections: a lint-disable directive (typed-source outputs only), a
// header banner, and the generated content. Existing files are always
// overwritten.
//
//	err := emitter.WriteFile("api/client.ts", body, banner,
//	    emitter.TypeScript, []string{"no-any"})
//	// api/client.ts starts with:
//	// /* tslint:disable:no-any max-line-length */
//
// Batches can be previewed before anything touches the disk; each file
// is listed as an output step instead of being written:
//
//	err := emitter.NewOS().Execute(ctx, files, emitter.Options{DryRun: true})
package emitter
