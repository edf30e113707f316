// +build logless

package logger

// Log is a no-op sink selected by the logless build tag, for embedded
// or benchmark builds that want Integrate's logging calls compiled out.
var Log = EmptyLog{}

type EmptyLog struct{}

func (l EmptyLog) Debug() EmptyLog   { return l }
func (l EmptyLog) Info() EmptyLog    { return l }
func (l EmptyLog) Warning() EmptyLog { return l }
func (l EmptyLog) Warn() EmptyLog    { return l }
func (l EmptyLog) Error() EmptyLog   { return l }

func (l EmptyLog) Msg(string) EmptyLog { return l }
func (l EmptyLog) Err(error) EmptyLog  { return l }

func (l EmptyLog) Int(string, int) EmptyLog         { return l }
func (l EmptyLog) Str(string, string) EmptyLog      { return l }
func (l EmptyLog) Float64(string, float64) EmptyLog    { return l }
func (l EmptyLog) Floats64(string, []float64) EmptyLog { return l }
