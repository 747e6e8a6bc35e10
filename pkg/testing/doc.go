// Package testing drives a weft runtime in tests without a terminal.
//
// # Quick Start
//
// Create a tester, load templates, send input and check the screen:
//
//	func TestCounter(t *testing.T) {
//	    tester := wefttest.NewTesterWithT(t, geometry.NewSize(20, 3))
//	    runtime.AddComponent[counterState, int](tester.Runtime(), "main", counter{}, newState())
//	    tester.Templates().Insert("main", "- kind: text\n  attributes: {id: count, text: \"0\"}")
//	    tester.Load("main")
//
//	    tester.Press("+")
//	    if !tester.Find(wefttest.ByText("1")).Exists() {
//	        t.Error("expected count 1")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the painted screen and the element tree and compare them against
// a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot")
//
// Update snapshots with:
//
//	WEFT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Time
//
// Ticks read a fake clock:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import wefttest "github.com/go-drift/weft/pkg/testing"
package testing
