package module

import dom "almanac/internal/services/remind/domain"

// Ports holds the ports exposed by the remind module
type Ports struct {
	Runner dom.RunnerPort
}
