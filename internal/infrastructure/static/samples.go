package static

import "github.com/clothingstore/storefront-gateway/internal/core/domain"

func sample(id int64, name, brand string, price float64, color, size, desc, img string) domain.Product {
	return domain.Product{
		ID:          id,
		ProductName: name,
		Brand:       brand,
		Price:       price,
		Color:       color,
		Size:        size,
		Description: desc,
		IsActive:    true,
		Images:      []domain.ProductImage{{ImageURL: img, IsPrimary: true}},
	}
}

var sampleCategories = []domain.Category{
	{ID: 1, Name: "Men", Description: "Men's clothing", ImageURL: "https://via.placeholder.com/300x200?text=Men's+Fashion"},
	{ID: 2, Name: "Women", Description: "Women's clothing", ImageURL: "https://via.placeholder.com/300x200?text=Women's+Fashion"},
	{ID: 3, Name: "Accessories", Description: "Fashion accessories", ImageURL: "https://via.placeholder.com/300x200?text=Accessories"},
}

var sampleProducts = []domain.Product{
	sample(1, "Classic T-Shirt", "Fashion Brand", 24.99, "Black", "M", "A comfortable classic t-shirt", "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&auto=format"),
	sample(2, "Slim Fit Jeans", "Denim Co", 49.99, "Blue", "M", "Premium quality slim fit jeans", "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&auto=format"),
	sample(3, "Casual Sneakers", "Step Style", 59.99, "White", "L", "Comfortable casual sneakers for everyday wear", "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500&auto=format"),
	sample(4, "Hooded Sweatshirt", "Urban Wear", 39.99, "Gray", "L", "Warm and comfortable hooded sweatshirt", "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500&auto=format"),
	sample(5, "Summer Dress", "Elle", 64.99, "Floral", "S", "Light and elegant summer dress", "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500&auto=format"),
	sample(6, "Leather Wallet", "Accessorize", 29.99, "Brown", "One Size", "Genuine leather wallet with multiple card slots", "https://images.unsplash.com/photo-1627123424574-724758594e93?w=500&auto=format"),
	sample(7, "Graphic T-Shirt", "Urban Wear", 27.99, "Red", "L", "Bold graphic design t-shirt", "https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=500&auto=format"),
	sample(8, "Summer Shorts", "Fashion Brand", 34.99, "Khaki", "M", "Comfortable cotton shorts for summer", "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=500&auto=format"),
	sample(9, "Formal Shirt", "Business Co", 54.99, "White", "XL", "Premium business formal shirt", "https://images.unsplash.com/photo-1598033129183-c4f50c736f10?w=500&auto=format"),
	sample(10, "Hiking Boots", "Step Style", 89.99, "Brown", "L", "Durable waterproof hiking boots", "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=500&auto=format"),
	sample(11, "Denim Jacket", "Denim Co", 79.99, "Blue", "S", "Classic denim jacket for all seasons", "https://images.unsplash.com/photo-1601333144130-8cbb312386b6?w=500&auto=format"),
	sample(12, "Athletic Leggings", "SportFit", 39.99, "Black", "M", "High-performance athletic leggings", "https://images.unsplash.com/photo-1506902540976-5d4b24e5e2f8?w=500&auto=format"),
	sample(13, "Leather Belt", "Accessorize", 24.99, "Black", "One Size", "Classic leather belt with metal buckle", "https://images.unsplash.com/photo-1624222247344-550fb60ae30b?w=500&auto=format"),
	sample(14, "Wool Sweater", "Winter Wear", 69.99, "Navy", "L", "Warm wool sweater for cold weather", "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=500&auto=format"),
	sample(15, "Silk Scarf", "Accessorize", 19.99, "Multicolor", "One Size", "Elegant silk scarf with printed pattern", "https://images.unsplash.com/photo-1601924921557-45e6dea0a157?w=500&auto=format"),
	sample(16, "Baseball Cap", "Urban Wear", 19.99, "Black", "One Size", "Classic baseball cap with embroidered logo", "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=500&auto=format"),
	sample(17, "Evening Gown", "Elle", 129.99, "Red", "XS", "Elegant evening gown for special occasions", "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=500&auto=format"),
	sample(18, "Running Shoes", "SportFit", 79.99, "Blue", "M", "Lightweight running shoes with cushioned sole", "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=500&auto=format"),
	sample(19, "Wool Coat", "Winter Wear", 149.99, "Gray", "XL", "Premium wool coat for winter", "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=500&auto=format"),
	sample(20, "Sunglasses", "Accessorize", 45.99, "Black", "One Size", "UV protection stylish sunglasses", "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=500&auto=format"),
	sample(21, "Leather Backpack", "Accessorize", 89.99, "Brown", "One Size", "Stylish and durable leather backpack", "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=500&auto=format"),
	sample(22, "Beach Shorts", "Summer Vibes", 29.99, "Blue", "M", "Quick-dry beach shorts with pattern", "https://images.unsplash.com/photo-1565487623262-485063e4cac5?w=500&auto=format"),
	sample(23, "Linen Shirt", "Summer Vibes", 44.99, "White", "L", "Breathable linen shirt for summer", "https://images.unsplash.com/photo-1584273143981-41c073dfe8f8?w=500&auto=format"),
	sample(24, "Puffer Jacket", "Winter Wear", 109.99, "Black", "M", "Insulated puffer jacket for extreme cold", "https://images.unsplash.com/photo-1547949003-9792a18a2601?w=500&auto=format"),
	sample(25, "Pendant Necklace", "Accessorize", 35.99, "Silver", "One Size", "Elegant pendant necklace", "https://images.unsplash.com/photo-1599643477877-530eb83abc8e?w=500&auto=format"),
	sample(26, "Leather Gloves", "Winter Wear", 49.99, "Black", "M", "Warm leather gloves with touch screen capability", "https://images.unsplash.com/photo-1608540764211-d7fca0austxp?w=500&auto=format"),
	sample(27, "Wide Brim Hat", "Summer Vibes", 32.99, "Beige", "One Size", "Stylish wide brim hat for sun protection", "https://images.unsplash.com/photo-1572307480813-ceb0e59d8325?w=500&auto=format"),
	sample(28, "Canvas Sneakers", "Step Style", 39.99, "Red", "M", "Classic canvas sneakers for casual wear", "https://images.unsplash.com/photo-1579338908476-3a3a1d71a706?w=500&auto=format"),
	sample(29, "Cashmere Scarf", "Winter Wear", 59.99, "Gray", "One Size", "Luxurious cashmere scarf for winter", "https://images.unsplash.com/photo-1584807420143-8eec2be6214c?w=500&auto=format"),
	sample(30, "Silk Blouse", "Elle", 69.99, "Pink", "S", "Elegant silk blouse for professional wear", "https://images.unsplash.com/photo-1651238029038-2332c888dced?w=500&auto=format"),
	sample(31, "Cargo Pants", "Urban Wear", 54.99, "Olive", "M", "Functional cargo pants with multiple pockets", "https://images.unsplash.com/photo-1517445312882-bc9910d018b2?w=500&auto=format"),
	sample(32, "Knit Beanie", "Winter Wear", 19.99, "Blue", "One Size", "Warm knit beanie for winter", "https://images.unsplash.com/photo-1576871337632-b9aef4c17ab9?w=500&auto=format"),
	sample(33, "Slim Fit Dress Shirt", "Business Co", 59.99, "Light Blue", "M", "Premium slim fit dress shirt for business attire", "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=500&auto=format"),
	sample(34, "Classic Blazer", "Business Co", 129.99, "Navy", "L", "Timeless navy blazer for formal occasions", "https://images.unsplash.com/photo-1593030761757-71fae45fa0e7?w=500&auto=format"),
	sample(35, "Chino Pants", "Fashion Brand", 45.99, "Beige", "M", "Versatile chino pants for casual or smart-casual looks", "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=500&auto=format"),
	sample(36, "Oxford Button-Down", "Business Co", 49.99, "White", "L", "Classic Oxford button-down shirt", "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=500&auto=format"),
	sample(37, "Henley Shirt", "Urban Wear", 34.99, "Burgundy", "M", "Comfortable long sleeve henley shirt", "https://images.unsplash.com/photo-1552831388-6a0b3575b32a?w=500&auto=format"),
	sample(38, "Fleece Joggers", "SportFit", 39.99, "Gray", "L", "Comfortable fleece joggers for lounging", "https://images.unsplash.com/photo-1483985988355-763728e1935b?w=500&auto=format"),
	sample(39, "Quilted Vest", "Winter Wear", 69.99, "Black", "M", "Lightweight quilted vest for layering", "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=500&auto=format"),
	sample(40, "Polo Shirt", "Fashion Brand", 29.99, "Navy", "XL", "Classic polo shirt with embroidered logo", "https://images.unsplash.com/photo-1586363104862-3a5e2ab60d99?w=500&auto=format"),
	sample(41, "Wrap Dress", "Elle", 79.99, "Green", "S", "Elegant wrap dress for professional or evening wear", "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=500&auto=format"),
	sample(42, "Cardigan Sweater", "Elle", 49.99, "Cream", "M", "Soft knit cardigan sweater", "https://images.unsplash.com/photo-1583744946564-b52ac1c389c8?w=500&auto=format"),
	sample(43, "Midi Skirt", "Elle", 54.99, "Black", "XS", "Versatile midi skirt for office or casual wear", "https://images.unsplash.com/photo-1583496661160-fb5886a0aaaa?w=500&auto=format"),
	sample(44, "Blouse with Bow", "Elle", 59.99, "White", "S", "Elegant blouse with bow detail", "https://images.unsplash.com/photo-1552663958-89f4dbf1d91f?w=500&auto=format"),
	sample(45, "High-Waisted Jeans", "Denim Co", 59.99, "Dark Blue", "M", "Flattering high-waisted jeans", "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=500&auto=format"),
	sample(46, "Maxi Dress", "Summer Vibes", 69.99, "Blue", "M", "Flowing maxi dress for summer occasions", "https://images.unsplash.com/photo-1504194921103-f8b80cadd5e4?w=500&auto=format"),
	sample(47, "Yoga Pants", "SportFit", 44.99, "Black", "S", "High-performance yoga pants with pockets", "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=500&auto=format"),
	sample(48, "Peplum Top", "Elle", 39.99, "Rose", "XS", "Flattering peplum top for formal occasions", "https://images.unsplash.com/photo-1559734841-ded2538ad6ee?w=500&auto=format"),
	sample(49, "Leather Crossbody Bag", "Accessorize", 79.99, "Tan", "One Size", "Versatile leather crossbody bag", "https://images.unsplash.com/photo-1591561954555-607968c989ab?w=500&auto=format"),
	sample(50, "Gold Hoop Earrings", "Accessorize", 29.99, "Gold", "One Size", "Classic gold hoop earrings", "https://images.unsplash.com/photo-1630019852942-f89202989a59?w=500&auto=format"),
	sample(51, "Leather Watch", "Accessorize", 99.99, "Brown", "One Size", "Classic leather watch with analog face", "https://images.unsplash.com/photo-1524805444758-089113d48a6d?w=500&auto=format"),
	sample(52, "Woven Tote Bag", "Accessorize", 49.99, "Natural", "One Size", "Spacious woven tote bag for beach or shopping", "https://images.unsplash.com/photo-1544816155-12df9643f363?w=500&auto=format"),
	sample(53, "Beaded Bracelet Set", "Accessorize", 24.99, "Mixed", "One Size", "Set of 3 beaded bracelets", "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=500&auto=format"),
	sample(54, "Patterned Scarf", "Accessorize", 29.99, "Blue", "One Size", "Lightweight patterned scarf for all seasons", "https://images.unsplash.com/photo-1582966772680-860e372bb558?w=500&auto=format"),
	sample(55, "Aviator Sunglasses", "Accessorize", 59.99, "Silver", "One Size", "Classic aviator sunglasses with UV protection", "https://images.unsplash.com/photo-1577803645773-f96470509666?w=500&auto=format"),
	sample(56, "Leather Gloves", "Winter Wear", 49.99, "Black", "S", "Elegant leather gloves with cashmere lining", "https://images.unsplash.com/photo-1584374943049-a61d91debb8a?w=500&auto=format"),
	sample(57, "Striped Rugby Shirt", "Fashion Brand", 45.99, "Navy/Red", "L", "Classic striped rugby shirt", "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=500&auto=format"),
	sample(58, "V-Neck Sweater", "Winter Wear", 54.99, "Burgundy", "XL", "Classic V-neck sweater for layering", "https://images.unsplash.com/photo-1614252235316-8c857d38b5f4?w=500&auto=format"),
	sample(59, "Military Jacket", "Urban Wear", 89.99, "Olive", "M", "Stylish military-inspired jacket", "https://images.unsplash.com/photo-1536766768598-e09213fdcf22?w=500&auto=format"),
	sample(60, "Basketball Shorts", "SportFit", 34.99, "Black", "L", "Performance basketball shorts with pockets", "https://images.unsplash.com/photo-1562187193-30aa6f72a398?w=500&auto=format"),
	sample(61, "Off-Shoulder Blouse", "Elle", 49.99, "White", "XS", "Elegant off-shoulder blouse for summer", "https://images.unsplash.com/photo-1602573091675-813b5952857c?w=500&auto=format"),
	sample(62, "Pleated Midi Skirt", "Elle", 64.99, "Pink", "S", "Elegant pleated midi skirt for formal occasions", "https://images.unsplash.com/photo-1582142306909-195724d33ffc?w=500&auto=format"),
	sample(63, "Lace Detail Top", "Elle", 39.99, "Cream", "M", "Delicate top with lace detail", "https://images.unsplash.com/photo-1485462537746-965f33f7f6a7?w=500&auto=format"),
	sample(64, "Denim Overalls", "Denim Co", 79.99, "Light Blue", "S", "Casual denim overalls for weekend style", "https://images.unsplash.com/photo-1548864789-7b0d31045538?w=500&auto=format"),
}
