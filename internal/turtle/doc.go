// Package turtle implements LOGO style turtle graphics on top of a host
// Canvas.
//
// A Turtle draws each pen-down move straight onto the canvas. A
// HistoryTurtle records the moves as Lines and redraws them on Replay, which
// a FrameHost calls once per frame after RegisterWith. StateStack saves and
// restores turtle state for branching drawings.
package turtle
