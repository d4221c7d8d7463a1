package i18n

var messages = map[string]map[string]string{
	LocaleID: {
		"error.bad_request":            "Permintaan tidak valid",
		"error.unauthorized":           "Silakan masuk terlebih dahulu",
		"error.forbidden":              "Akses ditolak",
		"error.not_found":              "Data tidak ditemukan",
		"error.internal":               "Terjadi kesalahan pada server",
		"error.too_many_requests":      "Terlalu banyak percobaan, coba lagi nanti",
		"error.invalid_credentials":    "Email atau kata sandi salah",
		"error.user_disabled":          "Akun dinonaktifkan",
		"error.email_taken":            "Email sudah terdaftar",
		"error.invalid_email":          "Format email tidak valid",
		"error.invalid_phone":          "Nomor telepon harus 10-13 digit angka",
		"error.weak_password":          "Kata sandi tidak memenuhi kebijakan",
		"error.password_min_length":    "Kata sandi minimal %d karakter",
		"error.password_require_upper": "Kata sandi harus memuat huruf besar",
		"error.password_require_lower": "Kata sandi harus memuat huruf kecil",
		"error.password_require_number": "Kata sandi harus memuat angka",
		"error.password_require_special": "Kata sandi harus memuat karakter khusus",
		"error.captcha_required":       "Captcha wajib diisi",
		"error.captcha_invalid":        "Captcha salah",
		"error.product_not_found":      "Produk tidak ditemukan",
		"error.product_not_available":  "Produk tidak tersedia",
		"error.product_invalid":        "Data produk tidak valid",
		"error.insufficient_stock":     "Stok tidak mencukupi",
		"error.stock_invalid":          "Nilai stok tidak valid",
		"error.invalid_amount":         "Nominal tidak valid",
		"error.topup_below_minimum":    "Top up minimal Rp 10.000",
		"error.insufficient_balance":   "Saldo tidak mencukupi",
		"error.customer_not_found":     "Pelanggan tidak ditemukan",
		"error.promo_not_found":        "Kode promo tidak ditemukan",
		"error.promo_inactive":         "Kode promo tidak aktif",
		"error.promo_code_exists":      "Kode promo sudah digunakan",
		"error.promo_percent_invalid":  "Persentase diskon harus antara 0 dan 100",
		"error.cart_empty":             "Keranjang kosong",
		"error.cart_holds_other_product": "Keranjang hanya dapat memuat satu produk, kosongkan dulu",
		"error.invalid_cart_item":      "Item keranjang tidak valid",
		"error.order_not_found":        "Pesanan tidak ditemukan",
		"error.order_status_invalid":   "Status pesanan tidak memungkinkan aksi ini",
		"error.delivery_exists":        "Pesanan sudah memiliki pengiriman",
		"error.delivery_not_found":     "Pengiriman tidak ditemukan",
		"error.delivery_status_invalid": "Status pengiriman tidak memungkinkan aksi ini",
		"error.courier_not_found":      "Kurir tidak ditemukan",
		"error.vehicle_type_invalid":   "Jenis kendaraan tidak valid",
		"error.vehicle_plate_invalid":  "Plat kendaraan tidak valid",
		"error.invalid_full_name":      "Nama lengkap tidak valid",
		"error.invalid_user_status":    "Status akun tidak valid",
		"error.user_not_found":         "Akun tidak ditemukan",
		"error.profile_empty":          "Tidak ada data profil yang diubah",
		"error.password_old_invalid":   "Kata sandi lama salah",
		"error.dashboard_range_invalid": "Rentang dasbor tidak valid",
		"error.courier_has_active_work": "Kurir masih memiliki pengiriman aktif",
		"error.login_invalid":          "Email atau kata sandi salah",
		"error.auth_header_missing":    "Header otorisasi tidak ditemukan",
		"error.auth_header_invalid":    "Header otorisasi tidak valid",
		"error.token_invalid":          "Token tidak valid atau kedaluwarsa",
		"error.jwt_secret_missing":     "Konfigurasi autentikasi server belum lengkap",
		"error.user_id_invalid":        "Identitas pengguna tidak ditemukan",
		"error.user_id_type_invalid":   "Identitas pengguna tidak valid",
		"error.rate_limited":           "Terlalu banyak permintaan, coba lagi dalam %d detik",
		"error.login_too_many":         "Terlalu banyak percobaan masuk, coba lagi dalam %d detik",
		"error.rate_limit_unavailable": "Pembatasan permintaan tidak tersedia",
		"error.captcha_unavailable":    "Layanan captcha tidak tersedia",
		"error.captcha_generate_failed": "Gagal membuat captcha",
		"error.captcha_verify_failed":  "Gagal memverifikasi captcha",
		"error.register_failed":        "Pendaftaran gagal",
		"error.login_failed":           "Gagal masuk",
		"error.save_failed":            "Gagal menyimpan data",
		"error.user_fetch_failed":      "Gagal memuat data akun",
		"error.user_update_failed":     "Gagal memperbarui akun",
		"error.login_log_fetch_failed": "Gagal memuat riwayat masuk",
		"error.product_fetch_failed":   "Gagal memuat produk",
		"error.product_create_failed":  "Gagal membuat produk",
		"error.product_update_failed":  "Gagal memperbarui produk",
		"error.product_delete_failed":  "Gagal menghapus produk",
		"error.promo_fetch_failed":     "Gagal memuat promo",
		"error.promo_create_failed":    "Gagal membuat promo",
		"error.promo_update_failed":    "Gagal memperbarui promo",
		"error.promo_delete_failed":    "Gagal menghapus promo",
		"error.cart_fetch_failed":      "Gagal memuat keranjang",
		"error.cart_update_failed":     "Gagal memperbarui keranjang",
		"error.checkout_failed":        "Checkout gagal",
		"error.order_fetch_failed":     "Gagal memuat pesanan",
		"error.balance_fetch_failed":   "Gagal memuat saldo",
		"error.topup_failed":           "Top up gagal",
		"error.balance_adjust_failed":  "Penyesuaian saldo gagal",
		"error.customer_fetch_failed":  "Gagal memuat pelanggan",
		"error.courier_fetch_failed":   "Gagal memuat kurir",
		"error.courier_create_failed":  "Gagal membuat kurir",
		"error.courier_update_failed":  "Gagal memperbarui kurir",
		"error.courier_delete_failed":  "Gagal menghapus kurir",
		"error.delivery_fetch_failed":  "Gagal memuat pengiriman",
		"error.delivery_assign_failed": "Gagal menugaskan pengiriman",
		"error.delivery_update_failed": "Gagal memperbarui pengiriman",
		"error.dashboard_fetch_failed": "Gagal memuat dasbor",

		"order.status.pending":     "menunggu",
		"order.status.in progress": "dalam proses",
		"order.status.delivered":   "terkirim",

		"email.order_created.subject": "Pesanan %s diterima",
		"email.order_created.body":    "Pesanan %s sebesar %s %s telah kami terima dan sedang menunggu penugasan kurir.",
		"email.delivery_assigned.subject": "Pesanan %s sedang diantar",
		"email.delivery_assigned.body":    "Pesanan %s telah ditugaskan ke kurir %s dan sedang dalam proses pengiriman.",
		"email.delivery_delivered.subject": "Pesanan %s telah tiba",
		"email.delivery_delivered.body":    "Pesanan %s telah diterima. Terima kasih telah berbelanja di JoymarKet.",
	},
	LocaleEN: {
		"error.bad_request":            "Invalid request",
		"error.unauthorized":           "Please sign in first",
		"error.forbidden":              "Access denied",
		"error.not_found":              "Not found",
		"error.internal":               "Internal server error",
		"error.too_many_requests":      "Too many attempts, try again later",
		"error.invalid_credentials":    "Invalid email or password",
		"error.user_disabled":          "Account is disabled",
		"error.email_taken":            "Email is already registered",
		"error.invalid_email":          "Invalid email format",
		"error.invalid_phone":          "Phone number must be 10-13 digits",
		"error.weak_password":          "Password does not meet the policy",
		"error.password_min_length":    "Password must be at least %d characters",
		"error.password_require_upper": "Password must contain an uppercase letter",
		"error.password_require_lower": "Password must contain a lowercase letter",
		"error.password_require_number": "Password must contain a digit",
		"error.password_require_special": "Password must contain a special character",
		"error.captcha_required":       "Captcha is required",
		"error.captcha_invalid":        "Captcha is incorrect",
		"error.product_not_found":      "Product not found",
		"error.product_not_available":  "Product is not available",
		"error.product_invalid":        "Invalid product data",
		"error.insufficient_stock":     "Insufficient stock",
		"error.stock_invalid":          "Invalid stock value",
		"error.invalid_amount":         "Invalid amount",
		"error.topup_below_minimum":    "Minimum top up is Rp 10,000",
		"error.insufficient_balance":   "Insufficient balance",
		"error.customer_not_found":     "Customer not found",
		"error.promo_not_found":        "Promo code not found",
		"error.promo_inactive":         "Promo code is inactive",
		"error.promo_code_exists":      "Promo code already exists",
		"error.promo_percent_invalid":  "Discount percent must be between 0 and 100",
		"error.cart_empty":             "Cart is empty",
		"error.cart_holds_other_product": "Cart can only hold one product, clear it first",
		"error.invalid_cart_item":      "Invalid cart item",
		"error.order_not_found":        "Order not found",
		"error.order_status_invalid":   "Order status does not allow this action",
		"error.delivery_exists":        "Order already has a delivery",
		"error.delivery_not_found":     "Delivery not found",
		"error.delivery_status_invalid": "Delivery status does not allow this action",
		"error.courier_not_found":      "Courier not found",
		"error.vehicle_type_invalid":   "Invalid vehicle type",
		"error.vehicle_plate_invalid":  "Invalid vehicle plate",
		"error.invalid_full_name":      "Invalid full name",
		"error.invalid_user_status":    "Invalid account status",
		"error.user_not_found":         "Account not found",
		"error.profile_empty":          "No profile fields to update",
		"error.password_old_invalid":   "Old password is incorrect",
		"error.dashboard_range_invalid": "Invalid dashboard range",
		"error.courier_has_active_work": "Courier still has active deliveries",
		"error.login_invalid":          "Invalid email or password",
		"error.auth_header_missing":    "Authorization header is missing",
		"error.auth_header_invalid":    "Authorization header is invalid",
		"error.token_invalid":          "Token is invalid or expired",
		"error.jwt_secret_missing":     "Server authentication is not configured",
		"error.user_id_invalid":        "User identity is missing",
		"error.user_id_type_invalid":   "User identity is invalid",
		"error.rate_limited":           "Too many requests, try again in %d seconds",
		"error.login_too_many":         "Too many login attempts, try again in %d seconds",
		"error.rate_limit_unavailable": "Rate limiting is unavailable",
		"error.captcha_unavailable":    "Captcha service is unavailable",
		"error.captcha_generate_failed": "Failed to generate captcha",
		"error.captcha_verify_failed":  "Failed to verify captcha",
		"error.register_failed":        "Registration failed",
		"error.login_failed":           "Login failed",
		"error.save_failed":            "Failed to save data",
		"error.user_fetch_failed":      "Failed to load account",
		"error.user_update_failed":     "Failed to update account",
		"error.login_log_fetch_failed": "Failed to load login history",
		"error.product_fetch_failed":   "Failed to load products",
		"error.product_create_failed":  "Failed to create product",
		"error.product_update_failed":  "Failed to update product",
		"error.product_delete_failed":  "Failed to delete product",
		"error.promo_fetch_failed":     "Failed to load promos",
		"error.promo_create_failed":    "Failed to create promo",
		"error.promo_update_failed":    "Failed to update promo",
		"error.promo_delete_failed":    "Failed to delete promo",
		"error.cart_fetch_failed":      "Failed to load cart",
		"error.cart_update_failed":     "Failed to update cart",
		"error.checkout_failed":        "Checkout failed",
		"error.order_fetch_failed":     "Failed to load orders",
		"error.balance_fetch_failed":   "Failed to load balance",
		"error.topup_failed":           "Top up failed",
		"error.balance_adjust_failed":  "Balance adjustment failed",
		"error.customer_fetch_failed":  "Failed to load customers",
		"error.courier_fetch_failed":   "Failed to load couriers",
		"error.courier_create_failed":  "Failed to create courier",
		"error.courier_update_failed":  "Failed to update courier",
		"error.courier_delete_failed":  "Failed to delete courier",
		"error.delivery_fetch_failed":  "Failed to load deliveries",
		"error.delivery_assign_failed": "Failed to assign delivery",
		"error.delivery_update_failed": "Failed to update delivery",
		"error.dashboard_fetch_failed": "Failed to load dashboard",

		"order.status.pending":     "pending",
		"order.status.in progress": "in progress",
		"order.status.delivered":   "delivered",

		"email.order_created.subject": "Order %s received",
		"email.order_created.body":    "We received your order %s for %s %s. It is waiting for a courier assignment.",
		"email.delivery_assigned.subject": "Order %s is on its way",
		"email.delivery_assigned.body":    "Order %s has been assigned to courier %s and is now in progress.",
		"email.delivery_delivered.subject": "Order %s has arrived",
		"email.delivery_delivered.body":    "Order %s has been delivered. Thank you for shopping with JoymarKet.",
	},
}
