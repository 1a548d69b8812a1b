package out

// TextSink receives the rendered stopwatch readout.
type TextSink interface {
	SetText(text string)
}

// Field is an output value a stopwatch writes its final duration into.
type Field interface {
	Value() string
	SetValue(value string)
	Clear()
}
