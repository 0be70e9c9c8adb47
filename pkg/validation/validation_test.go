package validation

import "testing"

func TestNewReport(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if len(r.Errors) != 0 || len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Error("new report should have empty slices")
	}
}

func TestSeverities(t *testing.T) {
	cases := []struct {
		name      string
		add       func(*Report, Result)
		result    Result
		severity  Severity
		wantValid bool
	}{
		{"bad config", (*Report).AddError, Result{Level: LevelSchema, Path: "roads.cost_land", Message: "must be positive"}, SeverityError, false},
		{"jagged terrain", (*Report).AddError, Result{Level: LevelTerrain, Path: "terrainGrid[3]", Message: "row length 7, want 8"}, SeverityError, false},
		{"unplaced special", (*Report).AddWarning, Result{Level: LevelPlacement, Message: "no site for bld_ann"}, SeverityWarning, true},
		{"skipped highway link", (*Report).AddInfo, Result{Level: LevelRoads, Message: "1 highway links unroutable"}, SeverityInfo, true},
		{"block summary", (*Report).AddInfo, Result{Level: LevelBlocks, Message: "12 blocks, 3 parks"}, SeverityInfo, true},
	}
	for _, c := range cases {
		r := NewReport()
		c.add(r, c.result)
		if r.Valid != c.wantValid {
			t.Errorf("%s: valid = %v, want %v", c.name, r.Valid, c.wantValid)
		}
		all := append(append(append([]Result{}, r.Errors...), r.Warnings...), r.Info...)
		if len(all) != 1 {
			t.Fatalf("%s: %d results, want 1", c.name, len(all))
		}
		if all[0].Severity != c.severity {
			t.Errorf("%s: severity = %s, want %s", c.name, all[0].Severity, c.severity)
		}
		if all[0].Level != c.result.Level || all[0].Path != c.result.Path {
			t.Errorf("%s: result = %+v, want level and path kept", c.name, all[0])
		}
	}
}

// phaseReports mirrors the reports one generation run merges.
func phaseReports() []*Report {
	roads := NewReport()
	roads.AddInfo(Result{Level: LevelRoads, Message: "1 arterial links unroutable"})
	roads.AddInfo(Result{Level: LevelRoads, Message: "highway 40, arterial 120, local 300 tiles"})

	blocks := NewReport()
	blocks.AddInfo(Result{Level: LevelBlocks, Message: "8 blocks, 2 parks"})

	placement := NewReport()
	placement.AddWarning(Result{Level: LevelPlacement, Message: "no site for bld_ann"})
	return []*Report{roads, blocks, placement}
}

func TestMergePhaseReports(t *testing.T) {
	r := NewReport()
	for _, p := range phaseReports() {
		r.Merge(p)
	}
	if !r.Valid {
		t.Error("warnings and info should keep the run valid")
	}
	if r.Summary != "0 errors, 1 warnings, 3 info" {
		t.Errorf("summary = %q", r.Summary)
	}
	for level, want := range map[Level]int{LevelRoads: 2, LevelBlocks: 1, LevelPlacement: 1, LevelSchema: 0} {
		if got := r.Count(level); got != want {
			t.Errorf("Count(%s) = %d, want %d", level, got, want)
		}
	}
}

func TestMergeFatalInput(t *testing.T) {
	input := NewReport()
	input.AddError(Result{Level: LevelTerrain, Message: "no towns"})

	r := NewReport()
	r.Merge(phaseReports()[0])
	r.Merge(input)
	if r.Valid {
		t.Error("merged report should be invalid when a phase has errors")
	}
	if r.Summary != "1 errors, 0 warnings, 2 info" {
		t.Errorf("summary = %q", r.Summary)
	}
}

func TestMergeNil(t *testing.T) {
	r := NewReport()
	r.Merge(nil)
	if !r.Valid || r.Summary != "" {
		t.Errorf("merging nil changed report: valid=%v summary=%q", r.Valid, r.Summary)
	}
}
