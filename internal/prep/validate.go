package prep

// ValidateEntry is the structural gate every stored record must pass after
// migration: a non-empty id, all seven skill buckets present, and both
// scores set. It deliberately does not cross-check FinalScore against the
// scoring formula; migration already recomputes it.
func ValidateEntry(entry Entry) bool {
	if entry.ID == "" {
		return false
	}
	buckets := []([]string){
		entry.ExtractedSkills.CoreCS,
		entry.ExtractedSkills.Languages,
		entry.ExtractedSkills.Web,
		entry.ExtractedSkills.Data,
		entry.ExtractedSkills.Cloud,
		entry.ExtractedSkills.Testing,
		entry.ExtractedSkills.Other,
	}
	for _, b := range buckets {
		if b == nil {
			return false
		}
	}
	return true
}
