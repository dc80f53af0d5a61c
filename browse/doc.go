// Package browse retrieves rendered dashboard markup from a headless
// browser. Dashboard pages build their grids client-side, so fetching the
// raw URL yields an empty shell; the page has to be loaded in a real
// browser engine and the DOM serialized after the embedded report has
// navigated and settled. Some reports additionally hide their data tables
// behind an in-page paging control that must be clicked first.
package browse
