package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomain(t *testing.T) {
	reg := prometheus.NewRegistry()
	d, err := NewDomain(reg)
	require.NoError(t, err)

	d.CVCreated()
	d.CVCreated()
	d.CVDeleted()
	d.Published(PublishAssign)
	d.Published(PublishClear)
	d.Published(PublishAssign)
	d.PublicEvent("view")
	d.Validated(true)
	d.Validated(false)
	d.Validated(false)

	assert.Equal(t, float64(2), testutil.ToFloat64(d.cvsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.cvsDeleted))
	assert.Equal(t, float64(2), testutil.ToFloat64(d.publishes.WithLabelValues(PublishAssign)))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.publishes.WithLabelValues(PublishClear)))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.publicEvents.WithLabelValues("view")))
	assert.Equal(t, float64(2), testutil.ToFloat64(d.validations.WithLabelValues("false")))
}

func TestDomain_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewDomain(reg)
	require.NoError(t, err)

	_, err = NewDomain(reg)
	assert.Error(t, err)
}

func TestDomain_NilIsNoop(t *testing.T) {
	var d *Domain
	assert.NotPanics(t, func() {
		d.CVCreated()
		d.CVDeleted()
		d.Published(PublishRecompute)
		d.PublicEvent("share")
		d.Validated(true)
	})
}
