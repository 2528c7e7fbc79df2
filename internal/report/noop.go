package report

// NoopExporter discards reports. Used when exporting is disabled.
type NoopExporter struct{}

func NewNoopExporter() *NoopExporter { return &NoopExporter{} }

func (n *NoopExporter) Export(_ *Report) (string, error) { return "", nil }
func (n *NoopExporter) Format() Format                    { return "" }
