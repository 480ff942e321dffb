package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"weather-dashboard/internal/domain/gateway/queue"
	pkgsqs "weather-dashboard/pkg/sqs"
)

func NewSqsClient(awsConfig aws.Config) *sqs.Client {
	return sqs.NewFromConfig(awsConfig)
}

// NewSQSSender exposes the pkg/sqs sender as the domain queue.Sender
func NewSQSSender(client pkgsqs.SQSClient) queue.Sender {
	return pkgsqs.NewSender(client)
}
