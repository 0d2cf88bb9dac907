package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/internal/models"
	"github.com/younsl/jaws/pkg/errs"
	"github.com/younsl/jaws/pkg/utils"
)

// StateRunning is the instance-state-name of running instances
const StateRunning = string(types.InstanceStateNameRunning)

// describeInstances returns every instance in one of states (all when
// empty), following pagination to the end
func describeInstances(ctx context.Context, client EC2API, states []string) ([]models.Instance, error) {
	input := &ec2.DescribeInstancesInput{}
	if len(states) > 0 {
		input.Filters = []types.Filter{{
			Name:   aws.String("instance-state-name"),
			Values: states,
		}}
	}

	var instances []models.Instance
	for {
		result, err := client.DescribeInstances(ctx, input)
		if err != nil {
			return nil, errs.Service("DescribeInstances", err)
		}

		for _, reservation := range result.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, toInstance(instance))
			}
		}

		if result.NextToken == nil || *result.NextToken == "" {
			break
		}
		input.NextToken = result.NextToken
	}

	logging.Debug("instances listed", zap.Strings("states", states), zap.Int("count", len(instances)))
	return instances, nil
}

func toInstance(instance types.Instance) models.Instance {
	info := models.Instance{
		InstanceID:   utils.SafeDeref(instance.InstanceId),
		Name:         utils.GetName(instance.Tags),
		InstanceType: string(instance.InstanceType),
		PublicIP:     utils.SafeDeref(instance.PublicIpAddress),
		PrivateIP:    utils.SafeDeref(instance.PrivateIpAddress),
		Spot:         instance.InstanceLifecycle == types.InstanceLifecycleTypeSpot,
	}
	if instance.Placement != nil {
		info.AvailabilityZone = utils.SafeDeref(instance.Placement.AvailabilityZone)
	}
	if instance.State != nil {
		info.State = string(instance.State.Name)
	}
	if instance.IamInstanceProfile != nil {
		info.ProfileARN = utils.SafeDeref(instance.IamInstanceProfile.Arn)
	}
	return info
}

// describeActiveReservations returns the Reserved Instances in state active
func describeActiveReservations(ctx context.Context, client EC2API) ([]models.Reservation, error) {
	input := &ec2.DescribeReservedInstancesInput{
		Filters: []types.Filter{{
			Name:   aws.String("state"),
			Values: []string{string(types.ReservedInstanceStateActive)},
		}},
	}

	result, err := client.DescribeReservedInstances(ctx, input)
	if err != nil {
		return nil, errs.Service("DescribeReservedInstances", err)
	}

	reservations := make([]models.Reservation, 0, len(result.ReservedInstances))
	for _, ri := range result.ReservedInstances {
		reservations = append(reservations, toReservation(ri))
	}

	logging.Debug("active reservations listed", zap.Int("count", len(reservations)))
	return reservations, nil
}

func toReservation(ri types.ReservedInstances) models.Reservation {
	r := models.Reservation{
		ReservationID:    utils.SafeDeref(ri.ReservedInstancesId),
		InstanceType:     string(ri.InstanceType),
		Count:            aws.ToInt32(ri.InstanceCount),
		AvailabilityZone: utils.SafeDeref(ri.AvailabilityZone),
		End:              aws.ToTime(ri.End),
		DurationSeconds:  aws.ToInt64(ri.Duration),
		OfferingType:     string(ri.OfferingType),
		FixedPrice:       decimal.NewFromFloat32(aws.ToFloat32(ri.FixedPrice)),
	}
	if ri.Scope == types.ScopeRegional {
		r.AvailabilityZone = ""
	}
	for _, charge := range ri.RecurringCharges {
		r.RecurringCharges = append(r.RecurringCharges, models.RecurringCharge{
			Frequency: string(charge.Frequency),
			Amount:    decimal.NewFromFloat(aws.ToFloat64(charge.Amount)),
		})
	}
	return r
}

func toInstanceTypeSpec(info types.InstanceTypeInfo) models.InstanceTypeSpec {
	var spec models.InstanceTypeSpec
	if info.VCpuInfo != nil {
		spec.VCPUs = aws.ToInt32(info.VCpuInfo.DefaultVCpus)
	}
	if info.MemoryInfo != nil {
		spec.MemoryGiB = aws.ToInt64(info.MemoryInfo.SizeInMiB) / 1024
	}
	return spec
}
