package parameters

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/labstack/gommon/log"
)

// ProdPrefix is the Parameter Store path holding the production env vars.
const ProdPrefix = "/processos/prod/"

// LoadEnv exports every parameter under prefix as an environment variable,
// named after the parameter path without the prefix.
func LoadEnv(ctx context.Context, region, prefix string) error {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}
	return ExportParameters(ctx, ssm.NewFromConfig(cfg), prefix)
}

func ExportParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) error {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load parameters under %s: %w", prefix, err)
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			count++
		}
	}

	log.Debugf("loaded %d prod environment variables", count)
	return nil
}
