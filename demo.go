package prodscrape

// DemoSourceURL marks records produced by DemoProducts rather than a fetch.
const DemoSourceURL = "demo_data"

// DemoProducts returns a fixed set of sample records for exercising the
// output pipeline without network access.
func DemoProducts() []*Product {
	return []*Product{
		{Name: "Wireless Bluetooth Headphones", Price: "$79.99", Rating: "4.5", SourceURL: DemoSourceURL},
		{Name: "Smartphone Case - Clear", Price: "$24.99", Rating: "4.2", SourceURL: DemoSourceURL},
		{Name: "USB-C Charging Cable", Price: "$12.99", Rating: "4.7", SourceURL: DemoSourceURL},
		{Name: "Portable Power Bank 10000mAh", Price: "$34.99", Rating: "4.3", SourceURL: DemoSourceURL},
		{Name: "Wireless Mouse", Price: "$29.99", Rating: "4.1", SourceURL: DemoSourceURL},
	}
}
