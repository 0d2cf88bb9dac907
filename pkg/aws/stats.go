package aws

import (
	"sort"
)

// Lookup table names reported in Stats
const (
	TableInstanceTypes    = "instance-types"
	TableInstanceProfiles = "instance-profiles"
	TableRolePolicies     = "role-policies"
	TableOnDemandRates    = "on-demand-rates"
)

// StatLine is the call count of one lookup table
type StatLine struct {
	Table     string
	APICalls  int
	CacheHits int
}

// Stats counts provider calls and cache hits per lookup table
type Stats struct {
	lines map[string]*StatLine
}

func newStats() *Stats {
	return &Stats{lines: make(map[string]*StatLine)}
}

func (s *Stats) line(table string) *StatLine {
	l, ok := s.lines[table]
	if !ok {
		l = &StatLine{Table: table}
		s.lines[table] = l
	}
	return l
}

func (s *Stats) apiCall(table string)  { s.line(table).APICalls++ }
func (s *Stats) cacheHit(table string) { s.line(table).CacheHits++ }

// APICalls returns the number of provider calls made for table
func (s *Stats) APICalls(table string) int {
	if l, ok := s.lines[table]; ok {
		return l.APICalls
	}
	return 0
}

// Lines returns a copy of the counters sorted by table name
func (s *Stats) Lines() []StatLine {
	lines := make([]StatLine, 0, len(s.lines))
	for _, l := range s.lines {
		lines = append(lines, *l)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Table < lines[j].Table
	})
	return lines
}
