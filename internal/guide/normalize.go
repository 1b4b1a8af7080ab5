package guide

// Normalize repairs the parts of a guide that model output routinely gets
// wrong: nil slices become empty ones so they serialize as [] rather than
// null, and step numbers are rewritten to a contiguous 1..n sequence in
// their existing order.
func (g *Guide) Normalize() {
	if g.Steps == nil {
		g.Steps = []Step{}
	}
	if g.Troubleshooting == nil {
		g.Troubleshooting = []TroubleshootingEntry{}
	}
	if g.Safety == nil {
		g.Safety = []string{}
	}

	for i := range g.Steps {
		g.Steps[i].Number = i + 1
	}
}
