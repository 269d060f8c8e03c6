// Package inlinehtml folds a multi-file HTML page into one self-contained document.
//
// # Quick Start
//
// Inline every stylesheet link and external script of a page on disk:
//
//	html, err := inlinehtml.InlineFile("web/index.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("dist/index.html", []byte(html), 0644)
//
// References are resolved relative to the directory of the root document.
// Given
//
//	<link rel="stylesheet" href="a.css"><script src="b.js"></script>
//
// with a.css = "body{}" and b.js = "x()", the result is
//
//	<style>body{}</style><script>x()</script>
//
// Attributes other than the reference pair are kept on the wrapper element,
// so <link rel="stylesheet" href="a.css" media="print"> becomes
// <style media="print">...</style>. Carriage returns are removed from the
// whole result, inlined content included.
//
// # Pipeline
//
// Each call runs the same linear stages:
//
//  1. Load the root document (and its base directory in path mode)
//  2. Match stylesheet links, substitute them with <style> blocks
//  3. Match external scripts on the updated text, substitute them with <script> blocks
//  4. Remove carriage returns
//
// The first failure aborts the call. No partial document is ever returned.
//
// # Backends
//
// InlineFile reads from disk. InlineFS reads from any fs.FS, typically an
// embed.FS. InlineResource fetches the root document and every reference from
// a ResourceStore through a caller-built ResourceTable:
//
//	table := inlinehtml.ResourceTable{"style.css": 102, "script.js": 103}
//	store, err := inlinehtml.NewModuleStore() // Windows PE resources
//	html, err := inlinehtml.InlineResource(101, table, store)
//
// MemoryStore and FSStore provide the same contract on every platform.
//
// # Configuration
//
// Use functional options to customize a call:
//
//	html, err := inlinehtml.InlineFile(path,
//	    inlinehtml.WithLogger(logger),
//	    inlinehtml.WithMatcher(inlinehtml.MatcherTokenizer),
//	    inlinehtml.WithScriptBody(inlinehtml.ScriptBodyDrop),
//	    inlinehtml.WithEscapeClosingTags(),
//	)
//
// # Concurrency
//
// Calls share no state. Independent calls may run concurrently, including
// calls reading the same ResourceTable.
package inlinehtml
