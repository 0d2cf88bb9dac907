package models

import "fmt"

// Instance is a snapshot of an EC2 instance taken once per command
type Instance struct {
	InstanceID       string
	Name             string
	InstanceType     string
	AvailabilityZone string
	State            string
	PublicIP         string // empty when the instance has no public address
	PrivateIP        string
	ProfileARN       string // IAM instance profile, empty if none is attached
	Spot             bool
}

// HasProfile reports whether an IAM instance profile is attached
func (i Instance) HasProfile() bool {
	return i.ProfileARN != ""
}

// InstanceTypeSpec holds the hardware shape of an instance type
type InstanceTypeSpec struct {
	VCPUs     int32
	MemoryGiB int64
}

// String renders the spec as "vcpu/GiB", e.g. "2/8"
func (s InstanceTypeSpec) String() string {
	return fmt.Sprintf("%d/%d", s.VCPUs, s.MemoryGiB)
}

// InstanceDetail is an instance with the optional wide-mode enrichment
type InstanceDetail struct {
	Instance
	SSM  *bool
	Spec *InstanceTypeSpec
}
