//go:build azstoreintegration

package azstore

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/azstore/config"
	"github.com/c2fo/azstore/payload"
)

// ClientIntegrationTestSuite drives a real storage account through both this
// client and the official SDK, using the SDK as the conformance oracle for the
// hand-rolled signing and request building.
type ClientIntegrationTestSuite struct {
	suite.Suite
	client    *Client
	sdk       *azblob.Client
	container string
}

func (s *ClientIntegrationTestSuite) SetupSuite() {
	accountName, accountKey := os.Getenv("AZSTORE_ACCOUNT"), os.Getenv("AZSTORE_ACCOUNT_KEY")
	if accountName == "" || accountKey == "" {
		s.T().Skip("AZSTORE_ACCOUNT and AZSTORE_ACCOUNT_KEY must be set for integration tests")
	}
	ctx := s.T().Context()

	client, err := NewClient(config.Settings{AccountName: accountName, AccountKey: accountKey})
	s.Require().NoError(err)
	s.client = client

	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	s.Require().NoError(err)
	sdk, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName), credential, nil)
	s.Require().NoError(err)
	s.sdk = sdk

	s.container = fmt.Sprintf("azstore-int-%d", time.Now().UnixNano())
	s.Require().NoError(s.client.CreateContainer(ctx, s.container))
}

func (s *ClientIntegrationTestSuite) TearDownSuite() {
	if s.sdk == nil {
		return
	}
	_, err := s.sdk.DeleteContainer(s.T().Context(), s.container, nil)
	s.Require().NoError(err)
}

func (s *ClientIntegrationTestSuite) TestPutBlobReadBackWithSDK() {
	ctx := s.T().Context()
	content := []byte("put through azstore, read through the SDK")

	s.Require().NoError(s.client.PutBlob(ctx, s.container, "put-blob.txt", content, "text/plain", nil))

	resp, err := s.sdk.DownloadStream(ctx, s.container, "put-blob.txt", nil)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	got, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(content, got)
	s.Require().NotNil(resp.ContentType)
	s.Equal("text/plain", *resp.ContentType)
}

func (s *ClientIntegrationTestSuite) TestGetBlobUploadedWithSDK() {
	ctx := s.T().Context()
	content := []byte("uploaded through the SDK, read through azstore")

	_, err := s.sdk.UploadBuffer(ctx, s.container, "sdk-blob.txt", content, nil)
	s.Require().NoError(err)

	got, err := s.client.GetBlob(ctx, s.container, "sdk-blob.txt", nil)
	s.Require().NoError(err)
	s.Equal(content, got)
}

func (s *ClientIntegrationTestSuite) TestListBlobsMatchesSDK() {
	ctx := s.T().Context()
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("list/blob-%d.txt", i)
		s.Require().NoError(s.client.PutBlob(ctx, s.container, name, []byte("x"), "text/plain", nil))
	}

	body, err := s.client.ListBlobs(ctx, s.container, url.Values{"prefix": {"list/"}})
	s.Require().NoError(err)
	list, err := payload.DecodeBlobList(bytes.NewReader(body))
	s.Require().NoError(err)

	var ours []string
	for _, blob := range list.Blobs {
		ours = append(ours, blob.Name)
	}

	var sdkNames []string
	pager := s.sdk.NewListBlobsFlatPager(s.container, &azblob.ListBlobsFlatOptions{
		Prefix:     to.Ptr("list/"),
		MaxResults: to.Ptr(int32(100)),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		s.Require().NoError(err)
		for _, item := range page.Segment.BlobItems {
			sdkNames = append(sdkNames, *item.Name)
		}
	}

	s.ElementsMatch(sdkNames, ours)
}

func (s *ClientIntegrationTestSuite) TestListContainersIncludesOurs() {
	body, err := s.client.ListContainers(s.T().Context(), nil)
	s.Require().NoError(err)

	list, err := payload.DecodeContainerList(bytes.NewReader(body))
	s.Require().NoError(err)

	var names []string
	for _, container := range list.Containers {
		names = append(names, container.Name)
	}
	s.Contains(names, s.container)
}

func (s *ClientIntegrationTestSuite) TestBlobPropertiesMatchesSDK() {
	ctx := s.T().Context()
	content := []byte("sized content for properties")
	s.Require().NoError(s.client.PutBlob(ctx, s.container, "props.txt", content, "text/plain", nil))

	props, err := s.client.BlobProperties(ctx, s.container, "props.txt")
	s.Require().NoError(err)
	s.Equal(int64(len(content)), props.Size)
	s.Equal("text/plain", props.ContentType)
	s.NotEmpty(props.ETag)
	s.False(props.LastModified.IsZero())
}

func (s *ClientIntegrationTestSuite) TestDeleteBlob() {
	ctx := s.T().Context()
	s.Require().NoError(s.client.PutBlob(ctx, s.container, "doomed.txt", []byte("x"), "text/plain", nil))
	s.Require().NoError(s.client.DeleteBlob(ctx, s.container, "doomed.txt", nil))

	_, err := s.sdk.DownloadStream(ctx, s.container, "doomed.txt", nil)
	s.Require().Error(err)
	s.True(bloberror.HasCode(err, bloberror.BlobNotFound))
}

func (s *ClientIntegrationTestSuite) TestGetMissingBlob() {
	_, err := s.client.GetBlob(s.T().Context(), s.container, "never-created.txt", nil)
	s.Require().Error(err)
	s.True(HasCode(err, CodeBlobNotFound))
}

func TestClientIntegration(t *testing.T) {
	suite.Run(t, new(ClientIntegrationTestSuite))
}
