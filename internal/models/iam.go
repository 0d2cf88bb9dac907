package models

// InstanceProfile represents an IAM instance profile and the roles it carries
type InstanceProfile struct {
	ARN   string   // Full ARN of the profile
	ID    string   // Instance profile ID
	Name  string   // Instance profile name
	Roles []string // Role names; IAM allows at most one
}

// CallerIdentity is the STS view of the current credentials
type CallerIdentity struct {
	ARN     string
	Account string
	UserID  string
}
