package aggregator

import "time"

// Options holds every tunable constant of the engine. The zero value of a
// field means "use the default".
type Options struct {
	QuartileFraction          float64
	RecentCount               int
	TopTagCount               int
	SampleSize                int
	CaptionMaxLength          int
	MissingMetricsWarnRatio   float64
	ManualIncompleteWarnRatio float64
	// Location is used to bucket posting hours.
	Location *time.Location
	// Now stamps generated_at.
	Now func() time.Time
}

func DefaultOptions() Options {
	return Options{
		QuartileFraction:          0.25,
		RecentCount:               10,
		TopTagCount:               5,
		SampleSize:                3,
		CaptionMaxLength:          80,
		MissingMetricsWarnRatio:   0.5,
		ManualIncompleteWarnRatio: 0.3,
		Location:                  time.UTC,
		Now:                       time.Now,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.QuartileFraction <= 0 {
		o.QuartileFraction = d.QuartileFraction
	}
	if o.RecentCount <= 0 {
		o.RecentCount = d.RecentCount
	}
	if o.TopTagCount <= 0 {
		o.TopTagCount = d.TopTagCount
	}
	if o.SampleSize <= 0 {
		o.SampleSize = d.SampleSize
	}
	if o.CaptionMaxLength <= 0 {
		o.CaptionMaxLength = d.CaptionMaxLength
	}
	if o.MissingMetricsWarnRatio <= 0 {
		o.MissingMetricsWarnRatio = d.MissingMetricsWarnRatio
	}
	if o.ManualIncompleteWarnRatio <= 0 {
		o.ManualIncompleteWarnRatio = d.ManualIncompleteWarnRatio
	}
	if o.Location == nil {
		o.Location = d.Location
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	return o
}
