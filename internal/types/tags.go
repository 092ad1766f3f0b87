package types

import "strconv"

type (
	TimeSlot        string
	VideoLength     string
	ThumbnailType   string
	SoundType       string
	LocationTag     string
	ActionTag       string
	CompanionTag    string
	LanguageElement string
	RealityLevel    string
	MoodTag         string
	InfoDensity     string
	HookVisual      string
	HookText        string
	VideoStructure  string
	VideoTempo      string
	TelopAmount     string
	FilterType      string
	EndingType      string
	CaptionStyle    string
	TargetAudience  string
	ContentOrigin   string
	ProductionCost  string
	CampaignPurpose string
)

const (
	TimeSlotEarlyMorning TimeSlot = "early_morning"
	TimeSlotMorning      TimeSlot = "morning"
	TimeSlotLunch        TimeSlot = "lunch"
	TimeSlotAfternoon    TimeSlot = "afternoon"
	TimeSlotEvening      TimeSlot = "evening"
	TimeSlotNight        TimeSlot = "night"

	LengthShort     VideoLength = "short"
	LengthMedium    VideoLength = "medium"
	LengthLong      VideoLength = "long"
	LengthExtraLong VideoLength = "extra_long"

	ThumbnailNone ThumbnailType = "none"
	ThumbnailFace ThumbnailType = "face"
	ThumbnailText ThumbnailType = "text"
	ThumbnailEmo  ThumbnailType = "emo"

	SoundTrend     SoundType = "trend"
	SoundChill     SoundType = "chill"
	SoundAutoVoice SoundType = "auto_voice"
	SoundMyVoice   SoundType = "my_voice"
	SoundASMR      SoundType = "asmr"

	HookVisualImpact  HookVisual = "impact"
	HookVisualBeauty  HookVisual = "beauty"
	HookVisualMystery HookVisual = "mystery"
	HookVisualNormal  HookVisual = "normal"

	HookTextQuestion   HookText = "question"
	HookTextConclusion HookText = "conclusion"
	HookTextEmotion    HookText = "emotion"
	HookTextNone       HookText = "none"

	TempoFast   VideoTempo = "fast"
	TempoNormal VideoTempo = "normal"
	TempoSlow   VideoTempo = "slow"

	PurposeView    CampaignPurpose = "view"
	PurposeSave    CampaignPurpose = "save"
	PurposeComment CampaignPurpose = "comment"
)

// TagCategory names one of the four fixed analysis tag sections.
type TagCategory string

const (
	TagBasic    TagCategory = "basic"
	TagContent  TagCategory = "content"
	TagEditing  TagCategory = "editing"
	TagStrategy TagCategory = "strategy"
)

// TagCategories is the fixed section order.
var TagCategories = []TagCategory{TagBasic, TagContent, TagEditing, TagStrategy}

// TagField is one populated field of a section, value already stringified.
type TagField struct {
	Name  string
	Value string
}

// AnalysisTags is the qualitative tagging a user attaches to a video.
// Every section is optional.
type AnalysisTags struct {
	Basic    *BasicTags    `json:"basic,omitempty"`
	Content  *ContentTags  `json:"content,omitempty"`
	Editing  *EditingTags  `json:"editing,omitempty"`
	Strategy *StrategyTags `json:"strategy,omitempty"`
}

type BasicTags struct {
	TimeSlot      TimeSlot      `json:"time_slot,omitempty"`
	Length        VideoLength   `json:"length,omitempty"`
	ThumbnailType ThumbnailType `json:"thumbnail_type,omitempty"`
	SoundType     SoundType     `json:"sound_type,omitempty"`
}

type ContentTags struct {
	Location        LocationTag     `json:"location,omitempty"`
	Action          ActionTag       `json:"action,omitempty"`
	Companion       CompanionTag    `json:"companion,omitempty"`
	LanguageElement LanguageElement `json:"language_element,omitempty"`
	RealityLevel    RealityLevel    `json:"reality_level,omitempty"`
	Mood            MoodTag         `json:"mood,omitempty"`
	InfoDensity     InfoDensity     `json:"info_density,omitempty"`
}

type EditingTags struct {
	HookVisual  HookVisual     `json:"hook_visual,omitempty"`
	HookText    HookText       `json:"hook_text,omitempty"`
	Structure   VideoStructure `json:"structure,omitempty"`
	Tempo       VideoTempo     `json:"tempo,omitempty"`
	TelopAmount TelopAmount    `json:"telop_amount,omitempty"`
	Filter      FilterType     `json:"filter,omitempty"`
	Ending      EndingType     `json:"ending,omitempty"`
}

type StrategyTags struct {
	CaptionStyle CaptionStyle    `json:"caption_style,omitempty"`
	Target       TargetAudience  `json:"target,omitempty"`
	CTA          *bool           `json:"cta,omitempty"`
	Origin       ContentOrigin   `json:"origin,omitempty"`
	Cost         ProductionCost  `json:"cost,omitempty"`
	Purpose      CampaignPurpose `json:"purpose,omitempty"`
}

// Section returns the populated fields of one category in schema order,
// or nil when the section is absent.
func (t *AnalysisTags) Section(c TagCategory) []TagField {
	if t == nil {
		return nil
	}
	switch c {
	case TagBasic:
		if t.Basic != nil {
			return t.Basic.Fields()
		}
	case TagContent:
		if t.Content != nil {
			return t.Content.Fields()
		}
	case TagEditing:
		if t.Editing != nil {
			return t.Editing.Fields()
		}
	case TagStrategy:
		if t.Strategy != nil {
			return t.Strategy.Fields()
		}
	}
	return nil
}

func (b *BasicTags) Fields() []TagField {
	return collect(
		"time_slot", string(b.TimeSlot),
		"length", string(b.Length),
		"thumbnail_type", string(b.ThumbnailType),
		"sound_type", string(b.SoundType),
	)
}

func (c *ContentTags) Fields() []TagField {
	return collect(
		"location", string(c.Location),
		"action", string(c.Action),
		"companion", string(c.Companion),
		"language_element", string(c.LanguageElement),
		"reality_level", string(c.RealityLevel),
		"mood", string(c.Mood),
		"info_density", string(c.InfoDensity),
	)
}

func (e *EditingTags) Fields() []TagField {
	return collect(
		"hook_visual", string(e.HookVisual),
		"hook_text", string(e.HookText),
		"structure", string(e.Structure),
		"tempo", string(e.Tempo),
		"telop_amount", string(e.TelopAmount),
		"filter", string(e.Filter),
		"ending", string(e.Ending),
	)
}

func (s *StrategyTags) Fields() []TagField {
	cta := ""
	if s.CTA != nil {
		cta = strconv.FormatBool(*s.CTA)
	}
	return collect(
		"caption_style", string(s.CaptionStyle),
		"target", string(s.Target),
		"cta", cta,
		"origin", string(s.Origin),
		"cost", string(s.Cost),
		"purpose", string(s.Purpose),
	)
}

// collect takes name/value pairs and drops unset values.
func collect(pairs ...string) []TagField {
	out := make([]TagField, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		out = append(out, TagField{Name: pairs[i], Value: pairs[i+1]})
	}
	return out
}
