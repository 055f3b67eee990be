package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beanbocchi/ossclient/pkg/sdk"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := sdk.NewClient(sdk.Config{
		BaseURL:    "http://localhost:8088/v1/osss",
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
	})
	if err != nil {
		fmt.Printf("Create client failed: %v\n", err)
		return
	}

	// List
	urls, err := client.ListByPrefix(ctx, "images/")
	if err != nil {
		fmt.Printf("List failed: %v\n", err)
		return
	}
	for _, u := range urls {
		fmt.Println(u)
	}

	// Preview
	previews, err := client.BatchGeneratePreviewURLs(ctx, []string{"images/a.png", "docs/e.pdf"}, 600)
	if err != nil {
		fmt.Printf("Batch preview failed: %v\n", err)
		return
	}
	for _, u := range previews {
		fmt.Println(u)
	}

	// Info
	info, err := client.GetFileInfo(ctx, "docs/e.pdf")
	if err != nil {
		if sdk.IsAPI(err) {
			fmt.Printf("Server rejected request: %v\n", err)
			return
		}
		fmt.Printf("Get info failed: %v\n", err)
		return
	}
	fmt.Printf("%s %d bytes, %s\n", info.Key, info.Size.Int64, info.LastModified.Format("en-US"))

	// Download
	f, err := os.Create("e.pdf")
	if err != nil {
		fmt.Printf("Failed to create file: %v\n", err)
		return
	}
	defer f.Close()

	res, err := client.Download(ctx, "docs/e.pdf", f)
	if err != nil {
		fmt.Printf("Download failed: %v\n", err)
		return
	}

	fmt.Printf("Download successful: %d bytes, blake3 %s\n", res.Bytes, res.Hash)
}
