package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/golang/snappy"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// Key identifies one generated graph.
type Key struct {
	Vertices int
	EdgeProb float64
	Seed     int64
}

// keyPrefix namespaces graph records inside the database.
const keyPrefix = "graph/"

// String renders the key with the probability in permille so float
// formatting never leaks into the key space.
func (k Key) String() string {
	return fmt.Sprintf("%s%d/%d/%d", keyPrefix, k.Vertices, permille(k.EdgeProb), k.Seed)
}

func permille(p float64) int {
	return int(math.Round(p * 1000))
}

// graphRecord is the serialized form of a core.Graph.
type graphRecord struct {
	Vertices []vertexRecord `json:"vertices"`
	Edges    [][2]int       `json:"edges"`
}

type vertexRecord struct {
	ID     int   `json:"id"`
	Weight int64 `json:"weight"`
	X      int   `json:"x"`
	Y      int   `json:"y"`
}

// encodeGraph serializes g into checksum || snappy(json).
func encodeGraph(g *core.Graph) ([]byte, error) {
	rec := graphRecord{Edges: g.Edges()}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("encodeGraph: %w", err)
		}
		rec.Vertices = append(rec.Vertices, vertexRecord{ID: v.ID, Weight: v.Weight, X: v.X, Y: v.Y})
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encodeGraph: marshal: %w", err)
	}
	compressed := snappy.Encode(nil, data)

	out := make([]byte, 4+len(compressed))
	binary.BigEndian.PutUint32(out, crc32.ChecksumIEEE(compressed))
	copy(out[4:], compressed)

	return out, nil
}

// decodeGraph rebuilds a graph from encodeGraph output.
func decodeGraph(b []byte) (*core.Graph, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("decodeGraph: %d bytes: %w", len(b), ErrCorrupt)
	}
	payload := b[4:]
	if crc32.ChecksumIEEE(payload) != binary.BigEndian.Uint32(b) {
		return nil, fmt.Errorf("decodeGraph: checksum mismatch: %w", ErrCorrupt)
	}

	data, err := snappy.Decode(nil, payload)
	if err != nil {
		return nil, fmt.Errorf("decodeGraph: decompress: %v: %w", err, ErrCorrupt)
	}
	var rec graphRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decodeGraph: unmarshal: %v: %w", err, ErrCorrupt)
	}

	g := core.NewGraph()
	for _, v := range rec.Vertices {
		if err := g.AddVertex(v.ID, v.Weight, core.WithPosition(v.X, v.Y)); err != nil {
			return nil, fmt.Errorf("decodeGraph: %v: %w", err, ErrCorrupt)
		}
	}
	for _, e := range rec.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("decodeGraph: %v: %w", err, ErrCorrupt)
		}
	}

	return g, nil
}
