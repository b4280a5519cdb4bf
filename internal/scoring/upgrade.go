package scoring

// UpgradeOptions carries the side facts for the two titles being
// compared. Zero values mean unknown and skip the corresponding checks.
type UpgradeOptions struct {
	ExistingAttributes  Attributes
	CandidateAttributes Attributes
	ExistingSizeBytes   int64
	CandidateSizeBytes  int64
	SizeContext         *SizeContext
}

// UpgradeDecision explains whether a candidate release should replace an
// existing one under a profile.
type UpgradeDecision struct {
	IsUpgrade   bool   `json:"isUpgrade"`
	Improvement int    `json:"improvement"`
	Existing    Result `json:"existingResult"`
	Candidate   Result `json:"candidateResult"`
}

// IsUpgrade scores both titles under the same profile and decides
// upgrade eligibility: upgrades must be allowed, the existing score must
// sit below the upgrade ceiling (unless the ceiling is disabled), and
// the candidate must beat the existing score by at least the profile's
// minimum increment. A banned or otherwise rejected candidate is never
// an upgrade.
func (e *Engine) IsUpgrade(existingTitle, candidateTitle string, profile *Profile, opts UpgradeOptions) UpgradeDecision {
	existing := e.Score(existingTitle, profile, opts.ExistingAttributes, opts.ExistingSizeBytes, opts.SizeContext)
	candidate := e.Score(candidateTitle, profile, opts.CandidateAttributes, opts.CandidateSizeBytes, opts.SizeContext)

	decision := UpgradeDecision{
		Improvement: candidate.TotalScore - existing.TotalScore,
		Existing:    existing,
		Candidate:   candidate,
	}

	if !profile.UpgradesAllowed {
		return decision
	}
	if profile.UpgradeUntilScore != UnlimitedUpgrades && existing.TotalScore >= profile.UpgradeUntilScore {
		return decision
	}
	if decision.Improvement < profile.MinScoreIncrement {
		return decision
	}
	if !candidate.Accepted() {
		return decision
	}

	decision.IsUpgrade = true
	return decision
}
