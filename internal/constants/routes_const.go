package constants

// Base Routes
const (
	APIBasePath = "/api"
	HealthPath  = "/health"
	VersionPath = "/version"
)

// User Routes
const (
	UsersBasePath          = "/api/users"
	UserRegisterPath       = "/api/users/register"
	UserLoginPath          = "/api/users/login"
	UserLogoutPath         = "/api/users/logout"
	UserGetPath            = "/api/users/getuser"
	UserLoginStatusPath    = "/api/users/loggedin"
	UserUpdatePath         = "/api/users/updateuser"
	UserChangePasswordPath = "/api/users/changepassword"
	UserForgotPasswordPath = "/api/users/forgotpassword"
	UserResetPasswordPath  = "/api/users/resetpassword/{resetToken}"
)

// Product Routes
const (
	ProductsBasePath  = "/api/products"
	ProductDetailPath = "/api/products/{productID}"
)

// Contact Routes
const (
	ContactUsPath = "/api/contactus"
)

// URL Parameters
const (
	ParamProductID  = "productID"
	ParamResetToken = "resetToken"
)

// Query Parameters
const (
	QueryParamPage     = "page"
	QueryParamPageSize = "page_size"
)
