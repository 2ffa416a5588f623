package models

// CommitSource is the second argument git passes to prepare-commit-msg
type CommitSource string

const (
	// SourceMessage means the message was given with -m or -F
	SourceMessage CommitSource = "message"
	// SourceTemplate means the message came from -t or commit.template
	SourceTemplate CommitSource = "template"
	// SourceMerge means the commit is a merge or .git/MERGE_MSG exists
	SourceMerge CommitSource = "merge"
	// SourceSquash means .git/SQUASH_MSG exists
	SourceSquash CommitSource = "squash"
	// SourceCommit means -c, -C or --amend was given (a SHA follows)
	SourceCommit CommitSource = "commit"
)

// String returns the raw tag as git passed it
func (s CommitSource) String() string {
	return string(s)
}
