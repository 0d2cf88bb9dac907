package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

func pageIndex(token *string) int {
	page := 0
	if token != nil {
		fmt.Sscanf(*token, "page-%d", &page)
	}
	return page
}

func nextToken(page, pages int) *string {
	if page+1 < pages {
		return aws.String(fmt.Sprintf("page-%d", page+1))
	}
	return nil
}

type fakeEC2 struct {
	instancePages [][]ec2types.Instance
	reserved      []ec2types.ReservedInstances
	typePages     [][]ec2types.InstanceTypeInfo

	err          error // returned by DescribeInstances and DescribeReservedInstances
	typesErr     error
	typesErrPage int

	instanceInputs []ec2.DescribeInstancesInput
	reservedInputs []ec2.DescribeReservedInstancesInput
	typeCalls      int
}

func (f *fakeEC2) DescribeInstances(_ context.Context, in *ec2.DescribeInstancesInput, _ ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	f.instanceInputs = append(f.instanceInputs, *in)
	if f.err != nil {
		return nil, f.err
	}
	page := pageIndex(in.NextToken)
	out := &ec2.DescribeInstancesOutput{NextToken: nextToken(page, len(f.instancePages))}
	if page < len(f.instancePages) {
		out.Reservations = []ec2types.Reservation{{Instances: f.instancePages[page]}}
	}
	return out, nil
}

func (f *fakeEC2) DescribeReservedInstances(_ context.Context, in *ec2.DescribeReservedInstancesInput, _ ...func(*ec2.Options)) (*ec2.DescribeReservedInstancesOutput, error) {
	f.reservedInputs = append(f.reservedInputs, *in)
	if f.err != nil {
		return nil, f.err
	}
	return &ec2.DescribeReservedInstancesOutput{ReservedInstances: f.reserved}, nil
}

func (f *fakeEC2) DescribeInstanceTypes(_ context.Context, in *ec2.DescribeInstanceTypesInput, _ ...func(*ec2.Options)) (*ec2.DescribeInstanceTypesOutput, error) {
	f.typeCalls++
	page := pageIndex(in.NextToken)
	if f.typesErr != nil && page == f.typesErrPage {
		return nil, f.typesErr
	}
	out := &ec2.DescribeInstanceTypesOutput{NextToken: nextToken(page, len(f.typePages))}
	if page < len(f.typePages) {
		out.InstanceTypes = f.typePages[page]
	}
	return out, nil
}

type fakeIAM struct {
	profilePages [][]iamtypes.InstanceProfile
	policies     map[string][]string // role name to attached policy names

	profileCalls int
	policyCalls  int
}

func (f *fakeIAM) ListInstanceProfiles(_ context.Context, in *iam.ListInstanceProfilesInput, _ ...func(*iam.Options)) (*iam.ListInstanceProfilesOutput, error) {
	f.profileCalls++
	page := pageIndex(in.Marker)
	out := &iam.ListInstanceProfilesOutput{Marker: nextToken(page, len(f.profilePages))}
	out.IsTruncated = out.Marker != nil
	if page < len(f.profilePages) {
		out.InstanceProfiles = f.profilePages[page]
	}
	return out, nil
}

func (f *fakeIAM) ListAttachedRolePolicies(_ context.Context, in *iam.ListAttachedRolePoliciesInput, _ ...func(*iam.Options)) (*iam.ListAttachedRolePoliciesOutput, error) {
	f.policyCalls++
	out := &iam.ListAttachedRolePoliciesOutput{}
	for _, name := range f.policies[aws.ToString(in.RoleName)] {
		out.AttachedPolicies = append(out.AttachedPolicies, iamtypes.AttachedPolicy{PolicyName: aws.String(name)})
	}
	return out, nil
}

type fakeSTS struct {
	out *sts.GetCallerIdentityOutput
	err error
}

func (f *fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return f.out, f.err
}

// fakePricing answers by the instanceType filter of each query
type fakePricing struct {
	prices map[string][]string // instance type to price list documents
	err    error
	calls  []*pricing.GetProductsInput
}

func (f *fakePricing) GetProducts(_ context.Context, in *pricing.GetProductsInput, _ ...func(*pricing.Options)) (*pricing.GetProductsOutput, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return nil, f.err
	}
	return &pricing.GetProductsOutput{PriceList: f.prices[filterValue(in.Filters, "instanceType")]}, nil
}

func filterValue(filters []pricingtypes.Filter, field string) string {
	for _, f := range filters {
		if aws.ToString(f.Field) == field {
			return aws.ToString(f.Value)
		}
	}
	return ""
}

func priceDoc(usd string) string {
	return `{"product":{"sku":"SKU1"},"terms":{"OnDemand":{"SKU1.T":{"priceDimensions":{"SKU1.T.R":{"unit":"Hrs","pricePerUnit":{"USD":"` + usd + `"}}}}}}}`
}

func profile(arn string, roles ...string) iamtypes.InstanceProfile {
	p := iamtypes.InstanceProfile{Arn: aws.String(arn), InstanceProfileName: aws.String(arn)}
	for _, r := range roles {
		p.Roles = append(p.Roles, iamtypes.Role{RoleName: aws.String(r)})
	}
	return p
}

func typeInfo(name string, vcpus int32, mib int64) ec2types.InstanceTypeInfo {
	return ec2types.InstanceTypeInfo{
		InstanceType: ec2types.InstanceType(name),
		VCpuInfo:     &ec2types.VCpuInfo{DefaultVCpus: aws.Int32(vcpus)},
		MemoryInfo:   &ec2types.MemoryInfo{SizeInMiB: aws.Int64(mib)},
	}
}

func newTestCache(e *fakeEC2, i *fakeIAM, p *fakePricing) *MetadataCache {
	return NewMetadataCache(&Clients{EC2: e, IAM: i, Pricing: p}, CacheOptions{
		Region:    "ap-northeast-2",
		Currency:  "USD",
		SSMPolicy: "AmazonSSMManagedInstanceCore",
	}, nil)
}
