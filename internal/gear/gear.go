// Package gear implements the GEAR rolling fingerprint used by the base
// index. It is a non-cryptographic, byte-at-a-time hash over a fixed-width
// window: h = sum_i (h << 1) + table[b[i]].
//
// The table is a module-level constant so that no fingerprint computed by
// one build of this package is ever compared against one computed by
// another: the base index and the wire-stable "earliest wins" collision
// rule both depend on every caller hashing with the same table.
package gear

// Table is the fixed 256-entry random word table GEAR folds each input
// byte through. It must never change across builds: doing so would silently
// change which base windows collide, and therefore which copies an encoder
// emits, breaking bit-exact wire compatibility between builds.
var Table = [256]uint64{
	0x0e7c1d8337395b15, 0xcb880ea84990dd74, 0x0a3dd76df7a9dcd2, 0xe2f6876275c0d203,
	0x6201c19c5ce9cbb8, 0x735ec8a2aa6c431b, 0x7c22ed33f2361ae7, 0x42b24de496c2063f,
	0x9aa0cdeed7a902ad, 0x3c9a268c20851f5d, 0x7ccf4d570e265921, 0xa7cc8c0e8633806f,
	0x36bb02bb0663e78c, 0x78fb488d9554c819, 0x6b90ff9012990e72, 0x3faf6db5f5976932,
	0x3882067560f874d1, 0x9517af86dc28a00b, 0x8db76695209140d9, 0x8d442c8b39abd483,
	0x94f3abd28be014ef, 0x8b7854da87129a71, 0x8200323b77cb4af7, 0xc674b3eb97b4622c,
	0xbde7a1da4c2e7037, 0x908959ff4a544015, 0xe830f852929db9e7, 0x84e7c09858b29d30,
	0xe5983855a199478f, 0xc1440fac11712c14, 0x059b71cc6f192ab4, 0x81bd2c1b17e50cc5,
	0x4c9aaf25c694c3be, 0xa66929fa2dcd4196, 0x577fee89c8e13dd8, 0xd558d1480ad3bc41,
	0x5713fe5569690a92, 0x82520ad3a442cd5d, 0xc618dc019d45cb82, 0x860b45f3ba3a483f,
	0xa1527830d95c1db1, 0x13e9c06ad34ff2d4, 0x0adee9592f4f5478, 0x5e1e68cd5ec72c2f,
	0xe7fa99cc7d943bcd, 0xa1dc628aa1900e18, 0x3f1d0809b8b24b8e, 0xe9108c34e33df4c7,
	0xaef71fb697eba85a, 0x8f8a209c60a7bf25, 0x6c06a987f0f5c1a1, 0xbd694d6f467acf00,
	0x6896d752240c4ae0, 0x76f690a8819a0e36, 0xd0688e240a8b5fd3, 0x5978598edc03760c,
	0xf0b67d4eb827651e, 0x5e9cc186a7f5a7d5, 0xa91e708ed11f866e, 0x01bc445fc85b9ccc,
	0x525586ed4cef28a1, 0xe70122be631e7345, 0x81f00e6d6f904d55, 0xc09d64f09f2b9ebe,
	0x3e32701bb302b204, 0xebdc48f2be0109ae, 0xb46890f3a7bfa1e7, 0x720c9e7a661ca50b,
	0xc3a38d3b9110a43b, 0x63799967cae90356, 0xc7c3de30d96ce4b2, 0x858e142a93296bec,
	0x4a2fa2b9fa9df08a, 0x0d8126939026a0ba, 0x447e283e4da010bd, 0x7084bd5fb4c00528,
	0xda2d1524d4d5ce9a, 0xc4a59c43367ca737, 0xbe3adb1917549668, 0x23235611d165cccb,
	0x46bf91288e64c33f, 0x3e907babcad45705, 0xf1786fb025a93100, 0xefb7897bca31339e,
	0x12816a2e9f3cedf4, 0x80035a7609c40ac8, 0xc7a1cc3e17a5ff16, 0x2a75e9a66dbb6bc8,
	0x624f638244021d2b, 0x42334dcad2ffe236, 0x18e7d25c0b1b8805, 0x30f02be82df82659,
	0xe9ba43257f41f4da, 0xb5409d02c351ecec, 0x8043ea033e9d97c9, 0x18ba94df6aa6fa22,
	0x5a8a556bb2784a8d, 0xc9886356043a5ba5, 0x497c721802d735e4, 0x9a34bfe15bc8414d,
	0x0378f172a8d56e67, 0x5d49998408a00b25, 0xe31c7f0cb1ce3197, 0x669e74448a9221b9,
	0x1df629298541a9ad, 0x6ea18cc6a8ba5f32, 0x184f206f296761b8, 0x50602d55b1639730,
	0x6caff9d9df89aca8, 0xf897aeaa81a2d55e, 0x3ff4bbb530719ec1, 0xed65922781f31c76,
	0xf7d621aed2a2124e, 0xd1d058d3966fc6cf, 0xf044df6a5330845e, 0xc8aebf75b5c7326b,
	0xa4b716466bf6ee52, 0x5ef86d539dbacfb4, 0x4e795f50ac49f6db, 0xe980c15bbb0f228d,
	0x34a4c07c6219e899, 0xde23af252455a4f6, 0xa497b568d3fca7e2, 0x33f39bbf10dd0719,
	0x5fd7b4e0e460cacb, 0xb6e59aafafd05792, 0xd5d1370b3c83642e, 0x9d23e6ab0d1f9a47,
	0x4fe626284c103f71, 0x39ce675afaf9d3de, 0x6449004c81da7a59, 0xb207da25d68f6870,
	0x3397fb1b5114d5e4, 0x57ecd2529284fcda, 0xded35698c9a326f6, 0x6058882b513317d7,
	0x7e6c09eaabf7326f, 0x165917c43444829e, 0x5dedd5812ad6d504, 0xd490fae1b8b7016b,
	0xc2b458071554f562, 0x9e1a3550b0060d65, 0x4f92287511faaaeb, 0xf6252cc89225b6ee,
	0x8e7edeb5cdb7b42f, 0x2307d51943d60921, 0x8c3504f11962e871, 0xefbe9061a5f063b8,
	0x993cd189b6308140, 0xaea458712478be7e, 0xc7d8bd1ae1159e16, 0xe9cb5d2ccc81f054,
	0xb99a3a5297c5b100, 0x6d7cb6dddde8b95a, 0x4989c04b95887872, 0x622be73167afd607,
	0x883e36a9ffb471d9, 0x91d80efaa21e5957, 0xb4538e45924b9b2f, 0x734888c20aa6087f,
	0x731fff22ff1bac04, 0x13ccac540cbf2294, 0xf7e4232ddd3a939e, 0x7d0d784916ff39c6,
	0xbc24b1fb3664e913, 0x7e411e847a4c70d5, 0x2572d85e7f21cd11, 0xc4318bcb4ec851ab,
	0x14ba38d5094dacff, 0x7d2a7e18405af16d, 0x0a52c022c00517a0, 0x13fe9f2aed2b65fb,
	0xd989b2bcd8086202, 0xbaa769e2465a79f4, 0x49ee94f187062dca, 0xf8d82010985b73eb,
	0x817debac88e53eed, 0xc7771d703ab562a3, 0x8f9bc44e9b9d0752, 0x1773e153c73d7674,
	0xae7dde661d9d34d9, 0x36ee098690ca2852, 0x6516fcd6b8198b9d, 0x9a92685e6d9481f0,
	0x29c12692260f15e3, 0x2d10943c14cb09c4, 0xa4e38a186ea0afa1, 0x6a181495efa22048,
	0x98dc8f75afc458d9, 0x92e92b71c2f5d506, 0xb90b12a67778d1cd, 0xcc4f35300e426875,
	0x9ce8b7d98a05c8e4, 0x57bed54895bc3b8e, 0x3de28b64e02c162a, 0x93f24c12f19bf781,
	0xdce45c9ace42f992, 0xa0d31bf5e64eab61, 0x936c7b063eb2cc4e, 0x6eda276f10fcef18,
	0xb18bf4794acbc3fe, 0x257dc8468e138c06, 0xd9ff14c25103c052, 0xc35236d1bd05f442,
	0x8e87043e6179c4b4, 0x106047d0d57fc136, 0x4dcba49479b682c9, 0x40c4e97e0e659faf,
	0x7b46409643b8519f, 0xc1e0ffc0f74f771d, 0x243fa58866947476, 0x06e0fcb3bc655089,
	0xa31acfaacdbadf02, 0xcb86a7e7d1b177bd, 0xbc636bf29195749b, 0xae2e003966247011,
	0xe22b81bda4cec837, 0xe7f72c97d02c164f, 0x4bc9f703dd1e9a4e, 0xa8b41156c66ceb20,
	0x7a8e9df42ed22f62, 0xa886f0af036ed535, 0xb0a3ead4ea56cc3b, 0xc77e8db81f9ff88a,
	0x192662564c754014, 0x34d9c2b22f586304, 0x576b9f8b69590633, 0xae3b4f891f75c1ac,
	0x44181c7a2473507c, 0xb3a684225b652960, 0x464bbce3cd772ba7, 0x2ec02c7475fd2ce4,
	0xfebcf95d4f319b78, 0xd3dbb8d870a7cf19, 0xe8a63279e0162081, 0xd2f3b9d858614624,
	0xaf9cdbca6859bcfc, 0x9ea9518e33c57d56, 0x85ea52aea8d053e2, 0x295a4ccb14b3275a,
	0x32e4552eccd2b956, 0xc2ae148259d22090, 0x49e3ed1ba3e1de87, 0x2ded75fa1a07a711,
	0xd2e7bd80984313bd, 0x0c7421d016814384, 0x54cb478885e2190e, 0xf19913d295d378b5,
	0x9e4778003a932988, 0xca519768a8321a27, 0x5b9ad698ddc7a84e, 0xccc17370c3c04b4b,
	0xfa2cd7c5dbf6a42b, 0x7f634d72ce91f146, 0xdbe04eb0df72026d, 0x436daa369c666a64,
}

// Sum computes the GEAR fingerprint of a W-byte window, where W = len(window):
//
//	h <- 0
//	for i in 0..W: h <- (h << 1) + Table[b[i]]
//
// Byte-at-a-time recomputation is used deliberately; there is no incremental
// slide from one window to the next.
func Sum(window []byte) uint64 {
	var h uint64
	for _, b := range window {
		h = (h << 1) + Table[b]
	}

	return h
}
