package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/internal/models"
	"github.com/younsl/jaws/pkg/errs"
	"github.com/younsl/jaws/pkg/utils"
)

// listInstanceProfiles returns every instance profile in the account keyed by ARN
func (c *MetadataCache) listInstanceProfiles(ctx context.Context) (map[string]models.InstanceProfile, error) {
	profiles := make(map[string]models.InstanceProfile)
	var marker *string

	for {
		c.stats.apiCall(TableInstanceProfiles)
		result, err := c.iam.ListInstanceProfiles(ctx, &iam.ListInstanceProfilesInput{Marker: marker})
		if err != nil {
			return nil, errs.Service("ListInstanceProfiles", err)
		}

		for _, p := range result.InstanceProfiles {
			profile := models.InstanceProfile{
				ARN:  utils.SafeDeref(p.Arn),
				ID:   utils.SafeDeref(p.InstanceProfileId),
				Name: utils.SafeDeref(p.InstanceProfileName),
			}
			for _, role := range p.Roles {
				profile.Roles = append(profile.Roles, utils.SafeDeref(role.RoleName))
			}
			profiles[profile.ARN] = profile
		}

		if !result.IsTruncated {
			break
		}
		marker = result.Marker
	}

	logging.Debug("instance profiles listed", zap.Int("count", len(profiles)))
	return profiles, nil
}

// roleHasPolicy reports whether policyName is among the managed policies
// attached to role
func (c *MetadataCache) roleHasPolicy(ctx context.Context, role, policyName string) (bool, error) {
	input := &iam.ListAttachedRolePoliciesInput{RoleName: aws.String(role)}

	for {
		c.stats.apiCall(TableRolePolicies)
		result, err := c.iam.ListAttachedRolePolicies(ctx, input)
		if err != nil {
			return false, errs.Service("ListAttachedRolePolicies", err)
		}

		for _, policy := range result.AttachedPolicies {
			if utils.SafeDeref(policy.PolicyName) == policyName {
				return true, nil
			}
		}

		if !result.IsTruncated {
			return false, nil
		}
		input.Marker = result.Marker
	}
}
