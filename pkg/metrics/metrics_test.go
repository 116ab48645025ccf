package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)

	ArchivesWritten.WithLabelValues("ok").Inc()
	require.Equal(t, 1, testutil.CollectAndCount(ArchivesWritten, "todolists_archives_written_total"))

	require.Panics(t, func() { RegisterCollectors(reg) }, "double registration")
}
