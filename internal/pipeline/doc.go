// Package pipeline lays out classified markdown blocks as a paginated
// knowledge base article.
//
// Rendering is two-phase:
//   - Layout: the cover page and a reserved contents page are created, then
//     Flow draws every body block in order, starting pages as space runs
//     out and recording level-2 headings with the page they landed on.
//   - Back-patch: PatchTOC writes the contents listing onto the reserved
//     page, and StampFooters numbers every page.
//
// Back-patch passes run through canvas.Patch, so they can never add pages.
package pipeline
