// Package blend reconciles a rendered graph against the next candidate graph
// so a renderer can animate between them.
//
// # Overview
//
// When the selection changes, the map does not redraw from scratch. Links that
// survive get a new target strength, links that vanish fade out, and links
// that are new fade in. [Blend] computes the first two groups as a [Patch]:
// one [LinkUpdate] per link of the view graph.
//
// Link identity is the unordered endpoint pair ([graph.LinkKey]), so a link
// A-B in the view matches B-A in the next graph.
//
// # Strength Rule
//
// A retained link gets Strength = 1 / min(deg(source), deg(target)) where
// degrees are counted over the next graph. Links touching hubs are drawn
// weaker. Removed links get Strength 0 and a negative delta.
//
// # Appearing Links
//
// Links present only in the next graph have no position in the view yet, so
// the patch cannot describe them. The caller inserts them, before or after
// applying the patch. [Appearing] returns them ready for insertion:
//
//	p := blend.Blend(view, next)
//	if err := p.Apply(view); err != nil {
//	    return err
//	}
//	for _, l := range blend.Appearing(view, next) {
//	    _ = view.AddLink(l)
//	}
//
// # Mutation
//
// [Blend] and [Appearing] never modify their inputs. [Patch.Apply] and
// [BlendInPlace] mutate the view graph and need exclusive access to it.
package blend
