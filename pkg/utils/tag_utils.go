package utils

import (
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const (
	// NameTag is the conventional EC2 name tag
	NameTag = "Name"

	// EKSClusterTag is set on nodes launched by EKS managed node groups
	EKSClusterTag = "aws:eks:cluster-name"

	// UntitledName is shown when an instance carries neither tag
	UntitledName = "Untitled"
)

// GetTagValue returns the value of a tag with the given key and whether it was found
func GetTagValue(tags []types.Tag, key string) (string, bool) {
	for _, tag := range tags {
		if tag.Key != nil && *tag.Key == key {
			return SafeDeref(tag.Value), true
		}
	}
	return "", false
}

// GetName returns the Name tag, falling back to the EKS cluster name and
// then to "Untitled"
func GetName(tags []types.Tag) string {
	if name, ok := GetTagValue(tags, NameTag); ok {
		return name
	}
	if cluster, ok := GetTagValue(tags, EKSClusterTag); ok {
		return "[EKS] " + cluster
	}
	return UntitledName
}
