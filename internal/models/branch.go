package models

// DetachedPrefix starts every synthetic branch name produced for a detached HEAD
const DetachedPrefix = "HEAD-"

// ShortHashLen is the number of hex characters kept from a detached commit hash
const ShortHashLen = 7

// DetachedBranch returns the synthetic branch name for a detached HEAD at hash
func DetachedBranch(hash string) string {
	if len(hash) > ShortHashLen {
		hash = hash[:ShortHashLen]
	}
	return DetachedPrefix + hash
}
