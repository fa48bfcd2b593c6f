// Package publish renders documents to HTML and stores the results.
//
// Two backends ship with the package: DiskStore writes pages to a local
// output directory, S3Store uploads them to a bucket. The Store interface
// leaves room for other destinations.
//
//	store, _ := publish.NewDiskStore("dist")
//	pub := publish.NewPublisher(store, nil, nil)
//	artifacts, err := pub.PublishDir(ctx, "site")
package publish
