package metric

// landmarkTable is the narrow view metric.Landmark needs of
// *landmark.Table, kept as a local interface so this package does not
// import landmark (which would create an import cycle through engine,
// since landmark.Build consumes engine.Engine).
type landmarkTable interface {
	Estimate(a, b int64) (float64, bool)
}

// Landmark adapts a precomputed ALT distance table into an engine.Metric,
// giving the engine's A* module a tighter heuristic than plain Haversine
// once landmark tables are available.
type Landmark struct {
	table landmarkTable
}

// NewLandmark wraps table. table is typically a *landmark.Table.
func NewLandmark(table landmarkTable) *Landmark {
	return &Landmark{table: table}
}

// Distance delegates to the underlying table's triangle-inequality
// estimate.
func (l *Landmark) Distance(from, to int64) (float64, bool) {
	return l.table.Estimate(from, to)
}
