// Package testing provides a headless harness for exercising component
// trees through the same frame and dispatch path the engine uses.
//
// # Quick Start
//
//	func TestSave(t *testing.T) {
//	    saved := false
//	    root := widgets.NewVStack(widgets.StackConfig{},
//	        widgets.NewButton(widgets.ButtonConfig{ID: "save", Label: "Save",
//	            OnClick: func(*core.Context) { saved = true }}),
//	    )
//	    h := stratatest.NewHarnessWithT(t, root)
//	    h.Pump()
//	    h.Tap("save")
//	    assert.True(t, saved)
//	}
//
// # Snapshot Testing
//
// Capture the laid-out tree and draw calls and compare against a golden file:
//
//	h.CaptureSnapshot().MatchesFile(t, "testdata/form.snapshot.yaml")
//
// Update snapshots with:
//
//	STRATA_UPDATE_SNAPSHOTS=1 go test ./...
package testing
