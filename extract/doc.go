// Package extract reconstructs the text covered by an annotation region.
//
// Text inside a highlight is rarely stored as a contiguous string; it has
// to be rebuilt from positioned words. The package tries progressively
// cruder strategies until one yields text, then repairs words clipped at
// the region boundary.
package extract
