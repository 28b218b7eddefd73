// Package tui is the interactive laboratory: a terminal front end that
// joins the board editor and the replayable search session into one
// screen.
//
// What:
//   - A board pane: walls, terrain cost, endpoints, frontier and closed
//     cells, and the final path, with a movable edit cursor.
//   - A status pane: active mode, heuristic, connectivity, weight and
//     depth limit, plus step position, counters, path cost and timing.
//   - A narration pane: the step log of the replay, scrolled to the
//     newest line (bubbles viewport).
//   - A prompt line for saving and loading scenario files (bubbles
//     textinput).
//
// Why:
//   - Watching the frontier advance one step at a time is the point of
//     the lab; the terminal model (bubbletea) drives the replay loop
//     from key presses and timer beats with no extra machinery.
//
// Keys:
//   - Arrows or h/j/k/l move the cursor; space toggles a wall; s and e
//     drop the endpoints; + and - shape terrain cost; r scatters random
//     walls; c clears the board.
//   - tab, shift+tab and 1-7 pick the search mode; H cycles the
//     heuristic; d toggles diagonal movement; w/W and [ ] adjust weight
//     and depth limit.
//   - . and , step the replay; p plays at 80ms per step; home/end jump
//     to the ends; S and O save and open scenario files; ? expands the
//     help; q quits.
//
// Usage:
//
//	doc, err := editor.New(12, 9)
//	if err != nil { ... }
//	if err := tui.Run(doc, session.DefaultConfig()); err != nil { ... }
//
// Errors: edit and configuration mistakes never crash the program; they
// surface on the notice line and leave the previous state in place.
package tui
