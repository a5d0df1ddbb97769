// Package telemetry turns the shape of a binary tree into prometheus gauges
// and a structured log line. It is the bridge between the pure lvtree
// algorithms and the operational surface of the lvtree command.
package telemetry

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/shape"
)

// Summary is a point-in-time description of a tree's shape.
type Summary struct {
	Count    int
	Depth    int
	Height   int // as reported by shape.IsBalanced; always equals Depth
	Diameter int
	Balanced bool
	Layers   []int // width of layer i+1
}

// Summarize computes a Summary of the tree rooted at root.
func Summarize[T any](root *core.Node[T]) Summary {
	balanced, height := shape.IsBalanced(root)

	return Summary{
		Count:    shape.Count(root),
		Depth:    shape.Depth(root),
		Height:   height,
		Diameter: shape.Diameter(root),
		Balanced: balanced,
		Layers:   shape.LayerCounts(root),
	}
}

// TreeMetrics owns the gauges describing the most recently recorded tree.
type TreeMetrics struct {
	Size       prometheus.Gauge
	Height     prometheus.Gauge
	Diameter   prometheus.Gauge
	Balanced   prometheus.Gauge
	LayerWidth *prometheus.GaugeVec

	log zerolog.Logger
}

// NewTreeMetrics registers the lvtree gauges on reg. constLabels are attached
// to every series, e.g. {"tree": "random-bst"}. Registering twice on the same
// registry with the same labels panics, as with promauto.
func NewTreeMetrics(reg prometheus.Registerer, log zerolog.Logger, constLabels prometheus.Labels) *TreeMetrics {
	f := promauto.With(reg)

	return &TreeMetrics{
		Size: f.NewGauge(prometheus.GaugeOpts{
			Name:        "lvtree_tree_size",
			Help:        "Number of nodes in the tree",
			ConstLabels: constLabels,
		}),
		Height: f.NewGauge(prometheus.GaugeOpts{
			Name:        "lvtree_tree_height",
			Help:        "Nodes on the longest root-to-leaf path",
			ConstLabels: constLabels,
		}),
		Diameter: f.NewGauge(prometheus.GaugeOpts{
			Name:        "lvtree_tree_diameter",
			Help:        "Longest node-to-node distance in edges",
			ConstLabels: constLabels,
		}),
		Balanced: f.NewGauge(prometheus.GaugeOpts{
			Name:        "lvtree_tree_balanced",
			Help:        "1 if every node satisfies the AVL height rule, else 0",
			ConstLabels: constLabels,
		}),
		LayerWidth: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "lvtree_layer_width",
			Help:        "Number of nodes on each 1-indexed layer",
			ConstLabels: constLabels,
		}, []string{"layer"}),
		log: log,
	}
}

// Record publishes s on the gauges and logs it. Layer series from an
// earlier, deeper tree are dropped.
func (m *TreeMetrics) Record(s Summary) {
	m.Size.Set(float64(s.Count))
	m.Height.Set(float64(s.Height))
	m.Diameter.Set(float64(s.Diameter))
	if s.Balanced {
		m.Balanced.Set(1)
	} else {
		m.Balanced.Set(0)
	}

	m.LayerWidth.Reset()
	for i, w := range s.Layers {
		m.LayerWidth.WithLabelValues(strconv.Itoa(i + 1)).Set(float64(w))
	}

	widest := 0
	for _, w := range s.Layers {
		widest = max(widest, w)
	}
	m.log.Info().
		Str("nodes", humanize.Comma(int64(s.Count))).
		Int("height", s.Height).
		Int("diameter", s.Diameter).
		Bool("balanced", s.Balanced).
		Str("widest_layer", humanize.Comma(int64(widest))).
		Msg("tree observed")
}

// Observe summarizes root and records the result on m.
func Observe[T any](m *TreeMetrics, root *core.Node[T]) Summary {
	s := Summarize(root)
	m.Record(s)

	return s
}
