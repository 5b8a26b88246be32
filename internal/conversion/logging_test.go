package conversion

import (
	"testing"

	"fxcalc/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLoggingConverter_LogsComputedConversion(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := NewLoggingConverter(logger, newDefaultEngine(t))

	res, err := c.Convert(domain.ConversionRequest{Amount: 100, Source: "USD", Target: "KES"})

	require.NoError(t, err)
	require.Equal(t, 12593.0, res.NetAmount)
	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	require.Equal(t, logrus.DebugLevel, entry.Level)
	require.Equal(t, "conversion computed", entry.Message)
	require.Equal(t, "USD", entry.Data["source"])
	require.Equal(t, "KES", entry.Data["target"])
	require.Equal(t, 12593.0, entry.Data["net"])
}

func TestLoggingConverter_LogsRejectedConversion(t *testing.T) {
	logger, hook := test.NewNullLogger()
	c := NewLoggingConverter(logger, newDefaultEngine(t))

	_, err := c.Convert(domain.ConversionRequest{Amount: 0, Source: "USD", Target: "KES"})

	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, domain.ErrInvalidAmount, entry.Data[logrus.ErrorKey])
}

func TestLoggingConverter_GetRateDelegates(t *testing.T) {
	logger, hook := test.NewNullLogger()
	c := NewLoggingConverter(logger, newDefaultEngine(t))

	require.Equal(t, 128.50, c.GetRate("USD", "KES"))
	require.Empty(t, hook.AllEntries())
}
