// Package tricount counts the triangles of a large undirected simple graph
// supplied as a text edge list.
//
// The host pipeline canonicalizes the raw edges (self-loops dropped,
// duplicates merged), ranks nodes by degree, orients every edge from its
// lower-ranked to its higher-ranked endpoint, and packs the oriented
// adjacency into a compressed sparse row form. The count itself is the
// forward algorithm: for every oriented edge (u,v) a data-parallel kernel
// intersects the sorted forward rows of u and v. A triangle {u,v,w} with
// rank(u) < rank(v) < rank(w) is seen exactly once, while processing u's
// edge to v, so the total is exact.
package tricount
