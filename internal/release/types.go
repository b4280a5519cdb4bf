package release

// Resolution is the detected video resolution class
type Resolution string

const (
	Resolution2160p   Resolution = "2160p"
	Resolution1080p   Resolution = "1080p"
	Resolution720p    Resolution = "720p"
	Resolution480p    Resolution = "480p"
	ResolutionUnknown Resolution = "unknown"
)

// resolutionRank orders resolutions for comparison (higher is better)
var resolutionRank = map[Resolution]int{
	Resolution2160p:   4,
	Resolution1080p:   3,
	Resolution720p:    2,
	Resolution480p:    1,
	ResolutionUnknown: 0,
}

// Rank returns the position of the resolution in the total order.
// Higher values are better.
func (r Resolution) Rank() int { return resolutionRank[r] }

// Source is the detected release origin
type Source string

const (
	SourceRemux    Source = "remux"
	SourceBluRay   Source = "bluray"
	SourceWEBDL    Source = "webdl"
	SourceWEBRip   Source = "webrip"
	SourceHDTV     Source = "hdtv"
	SourceDVD      Source = "dvd"
	SourceCAM      Source = "cam"
	SourceTelesync Source = "telesync"
	SourceTelecine Source = "telecine"
	SourceScreener Source = "screener"
	SourceUnknown  Source = "unknown"
)

var sourceRank = map[Source]int{
	SourceRemux:    10,
	SourceBluRay:   9,
	SourceWEBDL:    8,
	SourceWEBRip:   7,
	SourceHDTV:     6,
	SourceDVD:      5,
	SourceScreener: 4,
	SourceTelecine: 3,
	SourceTelesync: 2,
	SourceCAM:      1,
	SourceUnknown:  0,
}

// Rank returns the position of the source in the total order.
func (s Source) Rank() int { return sourceRank[s] }

// Codec is the detected video codec
type Codec string

const (
	CodecAV1     Codec = "av1"
	CodecVVC     Codec = "vvc"
	CodecH265    Codec = "h265"
	CodecH264    Codec = "h264"
	CodecVP9     Codec = "vp9"
	CodecVC1     Codec = "vc1"
	CodecXviD    Codec = "xvid"
	CodecDivX    Codec = "divx"
	CodecMPEG2   Codec = "mpeg2"
	CodecUnknown Codec = "unknown"
)

var codecRank = map[Codec]int{
	CodecAV1:     9,
	CodecVVC:     8,
	CodecH265:    7,
	CodecH264:    6,
	CodecVP9:     5,
	CodecVC1:     4,
	CodecXviD:    3,
	CodecDivX:    2,
	CodecMPEG2:   1,
	CodecUnknown: 0,
}

// Rank returns the position of the codec in the total order.
func (c Codec) Rank() int { return codecRank[c] }

// HDRFormat is the detected high dynamic range format. The empty string
// means no HDR marker was found.
type HDRFormat string

const (
	HDRDolbyVisionHDR10Plus HDRFormat = "dolby-vision-hdr10+"
	HDRDolbyVisionHDR10     HDRFormat = "dolby-vision-hdr10"
	HDRDolbyVisionHLG       HDRFormat = "dolby-vision-hlg"
	HDRDolbyVisionSDR       HDRFormat = "dolby-vision-sdr"
	HDRDolbyVision          HDRFormat = "dolby-vision"
	HDR10Plus               HDRFormat = "hdr10+"
	HDR10                   HDRFormat = "hdr10"
	HDRGeneric              HDRFormat = "hdr"
	HDRHLG                  HDRFormat = "hlg"
	HDRPQ                   HDRFormat = "pq"
	HDRSDR                  HDRFormat = "sdr"
	HDRNone                 HDRFormat = ""
)

var hdrRank = map[HDRFormat]int{
	HDRDolbyVisionHDR10Plus: 11,
	HDRDolbyVisionHDR10:     10,
	HDRDolbyVisionHLG:       9,
	HDR10Plus:               8,
	HDR10:                   7,
	HDRGeneric:              6,
	HDRHLG:                  5,
	HDRPQ:                   4,
	HDRDolbyVision:          3,
	HDRDolbyVisionSDR:       2,
	HDRSDR:                  1,
	HDRNone:                 0,
}

// Rank returns the position of the HDR format in the total order.
// Dolby Vision without a fallback layer ranks below every combined form
// because it is a compatibility risk on non-DV displays.
func (h HDRFormat) Rank() int { return hdrRank[h] }

// AudioCodec is the detected audio codec. Atmos is a stackable modifier
// carried separately on ParsedRelease, not an AudioCodec value.
type AudioCodec string

const (
	AudioTrueHD   AudioCodec = "truehd"
	AudioDTSX     AudioCodec = "dts-x"
	AudioDTSHDMA  AudioCodec = "dts-hd-ma"
	AudioDTSHDHRA AudioCodec = "dts-hd-hra"
	AudioDTSHD    AudioCodec = "dts-hd"
	AudioDTSES    AudioCodec = "dts-es"
	AudioDTS      AudioCodec = "dts"
	AudioFLAC     AudioCodec = "flac"
	AudioPCM      AudioCodec = "pcm"
	AudioEAC3     AudioCodec = "eac3"
	AudioAC3      AudioCodec = "ac3"
	AudioAAC      AudioCodec = "aac"
	AudioOpus     AudioCodec = "opus"
	AudioMP3      AudioCodec = "mp3"
	AudioUnknown  AudioCodec = "unknown"
)

var audioRank = map[AudioCodec]int{
	AudioTrueHD:   14,
	AudioDTSX:     13,
	AudioDTSHDMA:  12,
	AudioPCM:      11,
	AudioFLAC:     10,
	AudioDTSHDHRA: 9,
	AudioDTSHD:    8,
	AudioDTSES:    7,
	AudioDTS:      6,
	AudioEAC3:     5,
	AudioAC3:      4,
	AudioOpus:     3,
	AudioAAC:      2,
	AudioMP3:      1,
	AudioUnknown:  0,
}

// Rank returns the position of the audio codec in the total order.
func (a AudioCodec) Rank() int { return audioRank[a] }

// EpisodeInfo describes the episode structure detected in a TV release
type EpisodeInfo struct {
	Season           int    `json:"season,omitempty"`
	Seasons          []int  `json:"seasons,omitempty"`
	Episodes         []int  `json:"episodes,omitempty"`
	AbsoluteEpisode  int    `json:"absoluteEpisode,omitempty"`
	IsSeasonPack     bool   `json:"isSeasonPack"`
	IsCompleteSeries bool   `json:"isCompleteSeries"`
	IsDaily          bool   `json:"isDaily"`
	AirDate          string `json:"airDate,omitempty"`
}

// ParsedRelease is the structured metadata extracted from one release
// title. It is created once per title and never mutated afterwards.
type ParsedRelease struct {
	OriginalTitle string     `json:"originalTitle"`
	CleanTitle    string     `json:"cleanTitle"`
	Year          int        `json:"year,omitempty"`
	Resolution    Resolution `json:"resolution"`
	Source        Source     `json:"source"`
	Codec         Codec      `json:"codec"`
	HDR           HDRFormat  `json:"hdr,omitempty"`
	AudioCodec    AudioCodec `json:"audioCodec,omitempty"`
	AudioChannels string     `json:"audioChannels,omitempty"`
	HasAtmos      bool       `json:"hasAtmos"`

	Episode   *EpisodeInfo `json:"episode,omitempty"`
	Languages []string     `json:"languages"`

	ReleaseGroup string `json:"releaseGroup,omitempty"`
	Edition      string `json:"edition,omitempty"`

	IsProper             bool `json:"isProper"`
	IsRepack             bool `json:"isRepack"`
	IsRemux              bool `json:"isRemux"`
	Is3D                 bool `json:"is3d"`
	HasHardcodedSubs     bool `json:"hasHardcodedSubs"`
	HasDVWithoutFallback bool `json:"hasDvWithoutFallback"`

	// Confidence is a 0..1 estimate of how much of the title was
	// understood. A bare title with no markers still parses, just low.
	Confidence float64 `json:"confidence"`
}

// IsTV reports whether the release carries episode structure.
func (p ParsedRelease) IsTV() bool { return p.Episode != nil }
