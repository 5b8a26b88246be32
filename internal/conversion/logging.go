package conversion

import (
	"time"

	"fxcalc/internal/domain"

	"github.com/sirupsen/logrus"
)

type Converter interface {
	GetRate(source, target string) float64
	Convert(req domain.ConversionRequest) (domain.ConversionResult, error)
}

// loggingConverter decorates a Converter with logging
type loggingConverter struct {
	logger logrus.FieldLogger
	next   Converter
}

func NewLoggingConverter(logger logrus.FieldLogger, next Converter) Converter {
	return &loggingConverter{logger: logger, next: next}
}

func (c *loggingConverter) GetRate(source, target string) float64 {
	return c.next.GetRate(source, target)
}

func (c *loggingConverter) Convert(req domain.ConversionRequest) (res domain.ConversionResult, err error) {
	defer func(begin time.Time) {
		entry := c.logger.WithFields(logrus.Fields{
			"method": "convert",
			"amount": req.Amount,
			"source": req.Source,
			"target": req.Target,
			"took":   time.Since(begin),
		})
		if err != nil {
			entry.WithError(err).Warn("conversion rejected")
			return
		}
		entry.WithFields(logrus.Fields{
			"gross": res.GrossAmount,
			"fee":   res.FeeAmount,
			"net":   res.NetAmount,
		}).Debug("conversion computed")
	}(time.Now())
	return c.next.Convert(req)
}
