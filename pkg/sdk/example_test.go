package sdk_test

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/smithy-go/ptr"

	"github.com/beanbocchi/ossclient/pkg/fileutil"
	"github.com/beanbocchi/ossclient/pkg/sdk"
)

func ExampleClient_ListAll() {
	// Create client
	client, err := sdk.NewClient(sdk.Config{BaseURL: "http://localhost:8088/v1/osss"})
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		return
	}

	urls, err := client.ListAll(context.Background())
	if err != nil {
		fmt.Printf("Failed to list objects: %v\n", err)
		return
	}

	fmt.Printf("Found %d objects\n", len(urls))
	for _, u := range urls {
		key := fileutil.ExtractObjectKey(u)
		fmt.Printf("- %s (%s)\n", key, fileutil.Classify(key))
	}
}

func ExampleClient_BatchGeneratePreviewURLs() {
	client, err := sdk.NewClient(sdk.Config{})
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		return
	}

	keys := []string{"images/cat.png", "videos/intro.mp4"}
	urls, err := client.BatchGeneratePreviewURLs(context.Background(), keys, 600)
	if err != nil {
		fmt.Printf("Failed to generate preview urls: %v\n", err)
		return
	}

	// urls[i] belongs to keys[i]
	for i, u := range urls {
		fmt.Printf("%s -> %s\n", keys[i], u)
	}
}

func ExampleClient_GetFileInfo() {
	// The plain API lives under /api/oss
	client, err := sdk.NewClient(sdk.Config{Profile: sdk.ProfilePlain})
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		return
	}

	info, err := client.GetFileInfo(context.Background(), "docs/report.pdf")
	if err != nil {
		fmt.Printf("Failed to get file info: %v\n", err)
		return
	}

	fmt.Printf("%s: %s, modified %s\n",
		info.Key, fileutil.FormatFileSize(info.Size.Int64), info.LastModified.Format("en"))
}

func ExampleClient_Configure() {
	client, err := sdk.NewClient(sdk.Config{})
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		return
	}

	// Only the given fields change
	err = client.Configure(sdk.ConfigUpdate{
		Timeout:    ptr.Duration(10 * time.Second),
		MaxRetries: ptr.Int(5),
	})
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		return
	}

	fmt.Println(client.Config().MaxRetries)
}

func ExampleClient_Download() {
	client, err := sdk.NewClient(sdk.Config{})
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		return
	}

	output, err := os.Create("report.pdf")
	if err != nil {
		fmt.Printf("Failed to create file: %v\n", err)
		return
	}
	defer output.Close()

	res, err := client.Download(context.Background(), "docs/report.pdf", output)
	if err != nil {
		fmt.Printf("Download failed: %v\n", err)
		return
	}

	fmt.Printf("Downloaded %s (%s)\n", fileutil.FormatFileSize(res.Bytes), res.Hash)
}
