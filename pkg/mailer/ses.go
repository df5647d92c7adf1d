package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESService is the subset of the SES client used here, defined for mocking.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer implements Mailer over AWS SES.
type SESMailer struct {
	client    SESService
	fromEmail string
}

// NewSESMailer loads the default AWS config for the given region and builds
// a Mailer sending from fromEmail.
func NewSESMailer(ctx context.Context, region, fromEmail string) (*SESMailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &SESMailer{
		client:    ses.NewFromConfig(awsCfg),
		fromEmail: fromEmail,
	}, nil
}

// NewSESMailerWithClient builds a Mailer on an existing SES client.
func NewSESMailerWithClient(client SESService, fromEmail string) *SESMailer {
	return &SESMailer{client: client, fromEmail: fromEmail}
}

func (m *SESMailer) Send(ctx context.Context, to, templateName string, data map[string]interface{}) error {
	subjectTmpl, bodyTmpl, err := lookupTemplate(templateName)
	if err != nil {
		return err
	}

	subject := RenderTemplate(subjectTmpl, data)
	body := RenderTemplate(bodyTmpl, data)

	_, err = m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(m.fromEmail),
	})
	return err
}
