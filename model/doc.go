// Package model defines the normalized feature tree produced by
// extraction: a Presentation owning its Theme, Masters, Slides and
// per-slide Elements, with geometry expressed as fractions of the
// slide canvas and colors canonicalized to hex/RGB/Lab.
//
// The tree is built once per extraction run and is not mutated
// afterwards.
package model
