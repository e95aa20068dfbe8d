/*
Package azstore is a minimal client for the Azure Blob Storage REST API,
authenticated with SharedKey request signing. It lists containers, uploads and
downloads blobs, and lists the blobs within a container. Every operation is a
single signed, stateless HTTP round trip: there are no retries, no caching, and
no shared mutable state, so a Client may be used from any number of goroutines.

Usage

Build a Client from config.Settings and call operations directly:

	import (
	    "github.com/c2fo/azstore"
	    "github.com/c2fo/azstore/config"
	)

	func DoSomething(ctx context.Context) error {
	    client, err := azstore.NewClient(config.Settings{
	        AccountName: "myaccount",
	        AccountKey:  "bXlrZXk=",
	    })
	    if err != nil {
	        return err
	    }

	    return client.PutBlob(ctx, "mycontainer", "greeting.txt", []byte("hello"), "text/plain", nil)
	}

Settings may also come from the AZSTORE_* environment variables via
config.FromEnv, or from a config.Registry when an application talks to more
than one named environment:

	registry := config.NewRegistry()
	registry.Register("staging", stagingSettings)
	registry.Register("production", productionSettings)

	settings, err := registry.Resolve("production")

The listing operations return the raw XML body; decode it with the payload
package when structured results are wanted:

	body, err := client.ListBlobs(ctx, "mycontainer", nil)
	if err != nil {
	    return err
	}
	list, err := payload.DecodeBlobList(bytes.NewReader(body))

A Client can be augmented with options, for instance to swap the transport for
a mock in tests:

	mock := &azstore.MockTransport{StatusCode: 201}
	client, err := azstore.NewClient(settings, azstore.WithTransport(mock))

Authentication

Every request is signed with the SharedKey scheme: the request is reduced to a
canonical string, an HMAC-SHA256 over that string is computed with the
base64-decoded account key, and the result is attached as

	Authorization: SharedKey {account}:{signature}

The account key is decoded once at NewClient; a key that is not valid base64
fails there, never per request.

Errors

Transport-level failures are returned wrapped with the method and URL of the
attempted request. A response with any status other than the single success
status expected for the operation is returned as a *ResponseError carrying the
full response; use errors.As or HasCode to inspect it:

	err := client.PutBlob(ctx, "c1", "a.txt", data, "text/plain", nil)
	if azstore.HasCode(err, azstore.CodeContainerNotFound) {
	    // create the container and try again
	}
*/
package azstore
