package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/internal/models"
	"github.com/younsl/jaws/internal/progress"
	"github.com/younsl/jaws/pkg/errs"
	"github.com/younsl/jaws/pkg/pricing"
)

// instanceTypesPageSize is the DescribeInstanceTypes page size
const instanceTypesPageSize = 100

// CacheOptions scopes the lookups of a MetadataCache
type CacheOptions struct {
	Region    string // operating region, used as the pricing regionCode
	Currency  string // pricing currency, e.g. USD
	SSMPolicy string // managed policy granting Session Manager access
}

// MetadataCache memoizes instance-type specs, profile SSM eligibility and
// on-demand rates for the lifetime of one command. It is not safe for
// concurrent use.
type MetadataCache struct {
	ec2      EC2API
	iam      IAMAPI
	pricing  pricing.ProductsAPI
	opts     CacheOptions
	notifier progress.Notifier

	specs    map[string]models.InstanceTypeSpec // nil until the catalog is loaded
	profiles map[string]models.InstanceProfile  // nil until the profiles are listed
	ssm      map[string]bool                    // by profile ARN
	rates    map[string]decimal.Decimal         // by instance type
	stats    *Stats
}

// NewMetadataCache creates an empty cache over the given clients
func NewMetadataCache(clients *Clients, opts CacheOptions, notifier progress.Notifier) *MetadataCache {
	if notifier == nil {
		notifier = progress.Discard{}
	}
	return &MetadataCache{
		ec2:      clients.EC2,
		iam:      clients.IAM,
		pricing:  clients.Pricing,
		opts:     opts,
		notifier: notifier,
		ssm:      make(map[string]bool),
		rates:    make(map[string]decimal.Decimal),
		stats:    newStats(),
	}
}

// Stats returns the call counters of the cache
func (c *MetadataCache) Stats() *Stats {
	return c.stats
}

// InstanceTypeSpec returns the vCPU and memory shape of an instance type.
// The first call loads the whole instance type catalog of the region; an
// unknown type is reported as not found.
func (c *MetadataCache) InstanceTypeSpec(ctx context.Context, instanceType string) (models.InstanceTypeSpec, bool, error) {
	if c.specs == nil {
		if err := c.loadInstanceTypes(ctx); err != nil {
			return models.InstanceTypeSpec{}, false, err
		}
	} else {
		c.stats.cacheHit(TableInstanceTypes)
	}

	spec, ok := c.specs[instanceType]
	return spec, ok, nil
}

// loadInstanceTypes commits the catalog only once every page is read, so a
// failed load is retried in full by the next lookup
func (c *MetadataCache) loadInstanceTypes(ctx context.Context) error {
	specs := make(map[string]models.InstanceTypeSpec)
	input := &ec2.DescribeInstanceTypesInput{MaxResults: aws.Int32(instanceTypesPageSize)}

	for {
		c.notifier.Update(fmt.Sprintf("getting instance types [%d]", len(specs)))
		c.stats.apiCall(TableInstanceTypes)
		result, err := c.ec2.DescribeInstanceTypes(ctx, input)
		if err != nil {
			return errs.Service("DescribeInstanceTypes", err)
		}

		for _, info := range result.InstanceTypes {
			specs[string(info.InstanceType)] = toInstanceTypeSpec(info)
		}

		if result.NextToken == nil || *result.NextToken == "" {
			break
		}
		input.NextToken = result.NextToken
	}

	logging.Debug("instance type catalog loaded", zap.Int("types", len(specs)))
	c.specs = specs
	return nil
}

// ProfileSSMCapable reports whether the instance's profile role carries the
// Session Manager policy. Instances without a profile are never capable and
// cost no calls.
func (c *MetadataCache) ProfileSSMCapable(ctx context.Context, instance models.Instance) (bool, error) {
	if !instance.HasProfile() {
		return false, nil
	}
	arn := instance.ProfileARN

	if capable, ok := c.ssm[arn]; ok {
		c.stats.cacheHit(TableRolePolicies)
		return capable, nil
	}

	if c.profiles == nil {
		c.notifier.Update("filling Instance Profile cache")
		profiles, err := c.listInstanceProfiles(ctx)
		if err != nil {
			return false, err
		}
		c.profiles = profiles
	} else {
		c.stats.cacheHit(TableInstanceProfiles)
	}

	profile, ok := c.profiles[arn]
	if !ok {
		return false, errs.Assumption("attached instance profile is listed in the account",
			"%s on %s", arn, instance.InstanceID)
	}
	if len(profile.Roles) != 1 {
		return false, errs.Assumption("instance profile carries exactly one role",
			"%s has %d", arn, len(profile.Roles))
	}

	c.notifier.Update("getting IAM role information")
	capable, err := c.roleHasPolicy(ctx, profile.Roles[0], c.opts.SSMPolicy)
	if err != nil {
		return false, err
	}

	c.ssm[arn] = capable
	return capable, nil
}

// OnDemandRate returns the hourly on-demand price of an instance type in the
// operating region. Failed lookups are not cached.
func (c *MetadataCache) OnDemandRate(ctx context.Context, instanceType string) (decimal.Decimal, error) {
	if rate, ok := c.rates[instanceType]; ok {
		c.stats.cacheHit(TableOnDemandRates)
		return rate, nil
	}

	c.notifier.Update(fmt.Sprintf("getting on-demand price of %s", instanceType))
	c.stats.apiCall(TableOnDemandRates)
	rate, err := pricing.GetEC2OnDemandPrice(ctx, c.pricing, instanceType, c.opts.Region, c.opts.Currency)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pricing %s: %w", instanceType, err)
	}

	c.rates[instanceType] = rate
	return rate, nil
}
