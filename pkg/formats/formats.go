// Package formats provides parsers for the model file formats the viewer loads.
//
// Only geometry is read from OBJ files. Materials, texture coordinates and
// authored normals are counted but not kept, because shading normals are
// synthesized from the faces.
package formats
