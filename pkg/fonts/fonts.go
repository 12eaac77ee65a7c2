// Package fonts names the font stacks used by the chart renderers.
//
// Charts reference fonts by CSS family so SVG output stays small and
// renders with whatever the viewer has installed; the stacks list a
// widely available fallback last.
package fonts

// Sans is the font stack of the simple style, axes and titles.
const Sans = "Helvetica, Arial, sans-serif"

// Handwriting is the font stack of the handdrawn style.
const Handwriting = "'xkcd Script', 'Comic Neue', 'Comic Sans MS', 'Patrick Hand', cursive"

// Graphviz is the font name passed to Graphviz, which takes a single
// family rather than a CSS stack.
const Graphviz = "Helvetica"
