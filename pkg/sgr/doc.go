/*
Package sgr models terminal text attributes as plain values and renders them
as ANSI SGR (Select Graphic Rendition) escape sequences.

The two halves of the package are:

  - The style model: Color, Style and Spec are small comparable value types.
    A Style holds an optional foreground, an optional background and a set of
    independent attribute flags. Styles are immutable; setters return a new
    value.

  - The difference engine: Between compares two styles and yields the
    smallest valid transition. SGR attribute codes only ever turn things on,
    so the engine either emits the newly needed fragments or, the moment any
    attribute has to be removed, falls back to a full reset followed by a
    re-render of the target style.

Rendering writes one escape fragment per attribute rather than a single
combined parameter list. Incremental writers (log streamers, diff viewers)
use WriteDifference to avoid re-emitting escapes for attributes that are
already active.

Color suppression is not handled here: the terminal package owns the
"is color enabled" decision and gates these writers behind it.
*/
package sgr
