// Package mesh builds the unit-cube geometry every renderable block shares.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// cubeCorners are the eight corners of a unit cube centred on the origin.
var cubeCorners = [8]mgl64.Vec4{
	{-0.5, -0.5, 0.5, 1},  // bottom-left-back
	{-0.5, 0.5, 0.5, 1},   // top-left-back
	{0.5, 0.5, 0.5, 1},    // top-right-back
	{0.5, -0.5, 0.5, 1},   // bottom-right-back
	{-0.5, -0.5, -0.5, 1}, // bottom-left-front
	{-0.5, 0.5, -0.5, 1},  // top-left-front
	{0.5, 0.5, -0.5, 1},   // top-right-front
	{0.5, -0.5, -0.5, 1},  // bottom-right-front
}

// cubeFaces index cubeCorners as quads: back, right, bottom, top, front, left.
var cubeFaces = [6][4]int{
	{1, 0, 3, 2},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
	{6, 5, 1, 2},
	{4, 5, 6, 7},
	{5, 4, 0, 1},
}

var faceUV = [4]mgl64.Vec2{
	{0, 0},
	{0, 1},
	{1, 1},
	{1, 0},
}

// VerticesPerCube is the length of every slice the generators return.
const VerticesPerCube = len(cubeFaces) * 6

// quad splits face corners a,b,c,d into the triangles abc and acd.
func quad[T any](a, b, c, d T) [6]T {
	return [6]T{a, b, c, a, c, d}
}

// CubeVertices returns the cube as a 36-vertex triangle list.
func CubeVertices() []mgl64.Vec4 {
	out := make([]mgl64.Vec4, 0, VerticesPerCube)
	for _, f := range cubeFaces {
		tri := quad(cubeCorners[f[0]], cubeCorners[f[1]], cubeCorners[f[2]], cubeCorners[f[3]])
		out = append(out, tri[:]...)
	}
	return out
}

// CubeNormals returns one normal per vertex of CubeVertices. Each face's
// normal is normalize((p2-p0) x (p1-p0)), repeated for its six vertices. With
// the face winding above this points into the cube.
func CubeNormals() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, VerticesPerCube)
	for _, f := range cubeFaces {
		p0 := cubeCorners[f[0]].Vec3()
		p1 := cubeCorners[f[1]].Vec3()
		p2 := cubeCorners[f[2]].Vec3()
		n := p2.Sub(p0).Cross(p1.Sub(p0)).Normalize()
		for range 6 {
			out = append(out, n)
		}
	}
	return out
}

// CubeTextureCoordinates returns one UV per vertex of CubeVertices, mapping
// the full texture onto every face.
func CubeTextureCoordinates() []mgl64.Vec2 {
	out := make([]mgl64.Vec2, 0, VerticesPerCube)
	for range cubeFaces {
		tri := quad(faceUV[0], faceUV[1], faceUV[2], faceUV[3])
		out = append(out, tri[:]...)
	}
	return out
}
