package store

// SeedProducts is the built-in catalog used when no persisted state
// exists yet. Eight entries spanning the three categories.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "iPhone 15 Pro Max",
			Category:      CategoryPhone,
			Price:         29990000,
			OriginalPrice: 34990000,
			Image:         "https://images.unsplash.com/photo-1696446702183-cbd50c2efc42?w=500&h=500&fit=crop",
			Description:   "iPhone 15 Pro Max với chip A17 Pro mạnh mẽ, camera 48MP, màn hình Super Retina XDR 6.7 inch",
			Specs:         []string{"Chip A17 Pro", "Camera 48MP", "RAM 8GB", "Bộ nhớ 256GB", "Pin 4422mAh"},
			Stock:         50,
			Brand:         "Apple",
		},
		{
			ID:            2,
			Name:          "Samsung Galaxy S24 Ultra",
			Category:      CategoryPhone,
			Price:         26990000,
			OriginalPrice: 29990000,
			Image:         "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?w=500&h=500&fit=crop",
			Description:   "Samsung Galaxy S24 Ultra với bút S Pen, camera 200MP, màn hình Dynamic AMOLED 6.8 inch",
			Specs:         []string{"Snapdragon 8 Gen 3", "Camera 200MP", "RAM 12GB", "Bộ nhớ 256GB", "Pin 5000mAh"},
			Stock:         45,
			Brand:         "Samsung",
		},
		{
			ID:            3,
			Name:          "MacBook Pro 14 M3",
			Category:      CategoryLaptop,
			Price:         42990000,
			OriginalPrice: 46990000,
			Image:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=500&fit=crop",
			Description:   "MacBook Pro 14 inch với chip M3, màn hình Liquid Retina XDR, hiệu năng vượt trội",
			Specs:         []string{"Chip M3", "RAM 8GB", "SSD 512GB", "Màn hình 14.2 inch", "Pin 70Wh"},
			Stock:         30,
			Brand:         "Apple",
		},
		{
			ID:            4,
			Name:          "Dell XPS 15",
			Category:      CategoryLaptop,
			Price:         35990000,
			OriginalPrice: 39990000,
			Image:         "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=500&h=500&fit=crop",
			Description:   "Dell XPS 15 với Intel Core i7 thế hệ 13, màn hình OLED 4K, thiết kế cao cấp",
			Specs:         []string{"Intel Core i7-13700H", "RAM 16GB", "SSD 512GB", "RTX 4050", "Màn hình 15.6 inch OLED"},
			Stock:         25,
			Brand:         "Dell",
		},
		{
			ID:            5,
			Name:          "iPad Pro 12.9 M2",
			Category:      CategoryTablet,
			Price:         28990000,
			OriginalPrice: 31990000,
			Image:         "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=500&h=500&fit=crop",
			Description:   "iPad Pro 12.9 inch với chip M2, màn hình Liquid Retina XDR, hỗ trợ Apple Pencil",
			Specs:         []string{"Chip M2", "RAM 8GB", "Bộ nhớ 128GB", "Màn hình 12.9 inch", "Camera 12MP"},
			Stock:         40,
			Brand:         "Apple",
		},
		{
			ID:            6,
			Name:          "ASUS ROG Strix G16",
			Category:      CategoryLaptop,
			Price:         38990000,
			OriginalPrice: 42990000,
			Image:         "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=500&h=500&fit=crop",
			Description:   "ASUS ROG Strix G16 - Laptop gaming mạnh mẽ với RTX 4060, màn hình 165Hz",
			Specs:         []string{"Intel Core i7-13650HX", "RAM 16GB", "SSD 512GB", "RTX 4060", "Màn hình 16 inch 165Hz"},
			Stock:         20,
			Brand:         "ASUS",
		},
		{
			ID:            7,
			Name:          "Xiaomi 14 Pro",
			Category:      CategoryPhone,
			Price:         18990000,
			OriginalPrice: 21990000,
			Image:         "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=500&h=500&fit=crop",
			Description:   "Xiaomi 14 Pro với camera Leica, Snapdragon 8 Gen 3, sạc nhanh 120W",
			Specs:         []string{"Snapdragon 8 Gen 3", "Camera 50MP Leica", "RAM 12GB", "Bộ nhớ 256GB", "Pin 4880mAh"},
			Stock:         60,
			Brand:         "Xiaomi",
		},
		{
			ID:            8,
			Name:          "HP Pavilion 15",
			Category:      CategoryLaptop,
			Price:         18990000,
			OriginalPrice: 21990000,
			Image:         "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&h=500&fit=crop",
			Description:   "HP Pavilion 15 - Laptop văn phòng hiệu suất cao, thiết kế thanh lịch",
			Specs:         []string{"Intel Core i5-1235U", "RAM 8GB", "SSD 512GB", "Intel Iris Xe", "Màn hình 15.6 inch FHD"},
			Stock:         35,
			Brand:         "HP",
		},
	}
}
