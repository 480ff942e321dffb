package aws

import (
	"context"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	awsConfig, err := LoadConfig(context.Background(), Config{
		Region:          "eu-west-1",
		Endpoint:        "http://localhost:4566",
		AccessKeyID:     "test",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if awsConfig.Region != "eu-west-1" {
		t.Errorf("region = %q; want eu-west-1", awsConfig.Region)
	}
	if awsConfig.BaseEndpoint == nil || *awsConfig.BaseEndpoint != "http://localhost:4566" {
		t.Errorf("endpoint = %v; want http://localhost:4566", awsConfig.BaseEndpoint)
	}

	credentials, err := awsConfig.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if credentials.AccessKeyID != "test" || credentials.SecretAccessKey != "secret" {
		t.Errorf("credentials = %s/%s; want the static pair", credentials.AccessKeyID, credentials.SecretAccessKey)
	}
}
