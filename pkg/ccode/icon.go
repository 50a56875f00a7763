package ccode

import "fmt"

// Icon is the display icon shown next to a text box. Slots without a name
// render nothing; IconNoIcon disables the icon.
type Icon uint8

const (
	IconNothing               Icon = 0x00
	IconGreenRupee            Icon = 0x01
	IconBlueRupee             Icon = 0x02
	IconWhiteRupee            Icon = 0x03
	IconRedRupee              Icon = 0x04
	IconPurpleRupee           Icon = 0x05
	IconWhiteRupee1           Icon = 0x06
	IconOrangeRupee           Icon = 0x07
	IconAdultWallet           Icon = 0x08
	IconGiantsWallet          Icon = 0x09
	IconRecoveryHeart         Icon = 0x0A
	IconRecoveryHeart1        Icon = 0x0B
	IconPieceOfHeart          Icon = 0x0C
	IconHeartContainer        Icon = 0x0D
	IconSmallMagicJar         Icon = 0x0E
	IconLargeMagicJar         Icon = 0x0F
	IconRecoveryHeart2        Icon = 0x10
	IconStrayFairy            Icon = 0x11
	IconRecoveryHeart3        Icon = 0x12
	IconRecoveryHeart4        Icon = 0x13
	IconBomb                  Icon = 0x14
	IconBomb1                 Icon = 0x15
	IconBomb2                 Icon = 0x16
	IconBomb3                 Icon = 0x17
	IconBomb4                 Icon = 0x18
	IconDekuStick             Icon = 0x19
	IconBombchu               Icon = 0x1A
	IconBombBag               Icon = 0x1B
	IconBigBombBag            Icon = 0x1C
	IconBiggerBombBag         Icon = 0x1D
	IconHerosBow              Icon = 0x1E
	IconHerosBow1             Icon = 0x1F
	IconHerosBow2             Icon = 0x20
	IconHerosBow3             Icon = 0x21
	IconQuiver                Icon = 0x22
	IconBigQuiver             Icon = 0x23
	IconBiggestQuiver         Icon = 0x24
	IconFireArrow             Icon = 0x25
	IconIceArrow              Icon = 0x26
	IconLightArrow            Icon = 0x27
	IconDekuNut               Icon = 0x28
	IconDekuNut1              Icon = 0x29
	IconDekuNut2              Icon = 0x2A
	IconHerosShield           Icon = 0x32
	IconMirrorShield          Icon = 0x33
	IconPowderKeg             Icon = 0x34
	IconMagicBean             Icon = 0x35
	IconPictographBox         Icon = 0x36
	IconKokiriSword           Icon = 0x37
	IconRazorSword            Icon = 0x38
	IconGildedSword           Icon = 0x39
	IconFierceDeitysSword     Icon = 0x3A
	IconGreatFairysSword      Icon = 0x3B
	IconSmallKey              Icon = 0x3C
	IconBossKey               Icon = 0x3D
	IconDungeonMap            Icon = 0x3E
	IconCompass               Icon = 0x3F
	IconPowderKeg1            Icon = 0x40
	IconHookshot              Icon = 0x41
	IconLensOfTruth           Icon = 0x42
	IconPictographBox1        Icon = 0x43
	IconFishingRod            Icon = 0x44
	IconOcarinaOfTime         Icon = 0x4C
	IconBombersNotebook       Icon = 0x50
	IconGoldSkulltulaToken    Icon = 0x52
	IconOdolwasRemains        Icon = 0x55
	IconGohtsRemains          Icon = 0x56
	IconGyorgsRemains         Icon = 0x57
	IconTwinmoldsRemains      Icon = 0x58
	IconRedPotion             Icon = 0x59
	IconEmptyBottle           Icon = 0x5A
	IconRedPotion1            Icon = 0x5B
	IconGreenPotion           Icon = 0x5C
	IconBluePotion            Icon = 0x5D
	IconFairysSpirit          Icon = 0x5E
	IconDekuPrincess          Icon = 0x5F
	IconMilk                  Icon = 0x60
	IconMilkHalf              Icon = 0x61
	IconFish                  Icon = 0x62
	IconBug                   Icon = 0x63
	IconBlueFire              Icon = 0x64
	IconPoe                   Icon = 0x65
	IconBigPoe                Icon = 0x66
	IconSpringWater           Icon = 0x67
	IconHotSpringWater        Icon = 0x68
	IconZoraEgg               Icon = 0x69
	IconGoldDust              Icon = 0x6A
	IconMushroom              Icon = 0x6B
	IconSeahorse              Icon = 0x6E
	IconChateauRomani         Icon = 0x6F
	IconHylianLoach           Icon = 0x70
	IconDekuMask              Icon = 0x78
	IconGoronMask             Icon = 0x79
	IconZoraMask              Icon = 0x7A
	IconFierceDeityMask       Icon = 0x7B
	IconMaskOfTruth           Icon = 0x7C
	IconKafeisMask            Icon = 0x7D
	IconAllNightMask          Icon = 0x7E
	IconBunnyHood             Icon = 0x7F
	IconKeatonMask            Icon = 0x80
	IconGaroMask              Icon = 0x81
	IconRomaniMask            Icon = 0x82
	IconCircusLeadersMask     Icon = 0x83
	IconPostmansHat           Icon = 0x84
	IconCouplesMask           Icon = 0x85
	IconGreatFairysMask       Icon = 0x86
	IconGibdoMask             Icon = 0x87
	IconDonGerosMask          Icon = 0x88
	IconKamarosMask           Icon = 0x89
	IconCaptainsHat           Icon = 0x8A
	IconStoneMask             Icon = 0x8B
	IconBremenMask            Icon = 0x8C
	IconBlastMask             Icon = 0x8D
	IconMaskOfScents          Icon = 0x8E
	IconGiantsMask            Icon = 0x8F
	IconChateauRomani1        Icon = 0x91
	IconMilk1                 Icon = 0x92
	IconGoldDust1             Icon = 0x93
	IconHylianLoach1          Icon = 0x94
	IconSeahorse1             Icon = 0x95
	IconMoonsTear             Icon = 0x96
	IconTownTitleDeed         Icon = 0x97
	IconSwampTitleDeed        Icon = 0x98
	IconMountainTitleDeed     Icon = 0x99
	IconOceanTitleDeed        Icon = 0x9A
	IconRoomKey               Icon = 0xA0
	IconSpecialDeliveryToMama Icon = 0xA1
	IconLetterToKafei         Icon = 0xAA
	IconPendantOfMemories     Icon = 0xAB
	IconTinglesMap            Icon = 0xB3
	IconTinglesMap1           Icon = 0xB4
	IconTinglesMap2           Icon = 0xB5
	IconTinglesMap3           Icon = 0xB6
	IconTinglesMap4           Icon = 0xB7
	IconTinglesMap5           Icon = 0xB8
	IconTinglesMap6           Icon = 0xB9
	IconSmallBlackLine        Icon = 0xD8
	IconSmallBlackLine1       Icon = 0xD9
	IconSmallBlackLine2       Icon = 0xDA
	IconSmallBlackLine3       Icon = 0xDB
	IconAnju                  Icon = 0xDC
	IconKafei                 Icon = 0xDD
	IconCuriosityShopOwner    Icon = 0xDE
	IconBombShopOwnersMother  Icon = 0xDF
	IconRomani                Icon = 0xE0
	IconCremia                Icon = 0xE1
	IconMayorDotour           Icon = 0xE2
	IconMadameAroma           Icon = 0xE3
	IconToto                  Icon = 0xE4
	IconGorman                Icon = 0xE5
	IconPostman               Icon = 0xE6
	IconRosaSisters           Icon = 0xE7
	IconToiletHand            Icon = 0xE8
	IconGranny                Icon = 0xE9
	IconKamaro                Icon = 0xEA
	IconGrog                  Icon = 0xEB
	IconGormanBrothers        Icon = 0xEC
	IconShiro                 Icon = 0xED
	IconGuruGuru              Icon = 0xEE
	IconBombers               Icon = 0xEF
	IconExclamationMark       Icon = 0xF0
	IconNoIcon                Icon = 0xFE
)

var iconNames = map[Icon]string{
	IconNothing:               "nothing",
	IconGreenRupee:            "green_rupee",
	IconBlueRupee:             "blue_rupee",
	IconWhiteRupee:            "white_rupee",
	IconRedRupee:              "red_rupee",
	IconPurpleRupee:           "purple_rupee",
	IconWhiteRupee1:           "white_rupee_1",
	IconOrangeRupee:           "orange_rupee",
	IconAdultWallet:           "adult_wallet",
	IconGiantsWallet:          "giants_wallet",
	IconRecoveryHeart:         "recovery_heart",
	IconRecoveryHeart1:        "recovery_heart_1",
	IconPieceOfHeart:          "piece_of_heart",
	IconHeartContainer:        "heart_container",
	IconSmallMagicJar:         "small_magic_jar",
	IconLargeMagicJar:         "large_magic_jar",
	IconRecoveryHeart2:        "recovery_heart_2",
	IconStrayFairy:            "stray_fairy",
	IconRecoveryHeart3:        "recovery_heart_3",
	IconRecoveryHeart4:        "recovery_heart_4",
	IconBomb:                  "bomb",
	IconBomb1:                 "bomb_1",
	IconBomb2:                 "bomb_2",
	IconBomb3:                 "bomb_3",
	IconBomb4:                 "bomb_4",
	IconDekuStick:             "deku_stick",
	IconBombchu:               "bombchu",
	IconBombBag:               "bomb_bag",
	IconBigBombBag:            "big_bomb_bag",
	IconBiggerBombBag:         "bigger_bomb_bag",
	IconHerosBow:              "heros_bow",
	IconHerosBow1:             "heros_bow_1",
	IconHerosBow2:             "heros_bow_2",
	IconHerosBow3:             "heros_bow_3",
	IconQuiver:                "quiver",
	IconBigQuiver:             "big_quiver",
	IconBiggestQuiver:         "biggest_quiver",
	IconFireArrow:             "fire_arrow",
	IconIceArrow:              "ice_arrow",
	IconLightArrow:            "light_arrow",
	IconDekuNut:               "deku_nut",
	IconDekuNut1:              "deku_nut_1",
	IconDekuNut2:              "deku_nut_2",
	IconHerosShield:           "heros_shield",
	IconMirrorShield:          "mirror_shield",
	IconPowderKeg:             "powder_keg",
	IconMagicBean:             "magic_bean",
	IconPictographBox:         "pictograph_box",
	IconKokiriSword:           "kokiri_sword",
	IconRazorSword:            "razor_sword",
	IconGildedSword:           "gilded_sword",
	IconFierceDeitysSword:     "fierce_deitys_sword",
	IconGreatFairysSword:      "great_fairys_sword",
	IconSmallKey:              "small_key",
	IconBossKey:               "boss_key",
	IconDungeonMap:            "dungeon_map",
	IconCompass:               "compass",
	IconPowderKeg1:            "powder_keg_1",
	IconHookshot:              "hookshot",
	IconLensOfTruth:           "lens_of_truth",
	IconPictographBox1:        "pictograph_box_1",
	IconFishingRod:            "fishing_rod",
	IconOcarinaOfTime:         "ocarina_of_time",
	IconBombersNotebook:       "bombers_notebook",
	IconGoldSkulltulaToken:    "gold_skulltula_token",
	IconOdolwasRemains:        "odolwas_remains",
	IconGohtsRemains:          "gohts_remains",
	IconGyorgsRemains:         "gyorgs_remains",
	IconTwinmoldsRemains:      "twinmolds_remains",
	IconRedPotion:             "red_potion",
	IconEmptyBottle:           "empty_bottle",
	IconRedPotion1:            "red_potion_1",
	IconGreenPotion:           "green_potion",
	IconBluePotion:            "blue_potion",
	IconFairysSpirit:          "fairys_spirit",
	IconDekuPrincess:          "deku_princess",
	IconMilk:                  "milk",
	IconMilkHalf:              "milk_half",
	IconFish:                  "fish",
	IconBug:                   "bug",
	IconBlueFire:              "blue_fire",
	IconPoe:                   "poe",
	IconBigPoe:                "big_poe",
	IconSpringWater:           "spring_water",
	IconHotSpringWater:        "hot_spring_water",
	IconZoraEgg:               "zora_egg",
	IconGoldDust:              "gold_dust",
	IconMushroom:              "mushroom",
	IconSeahorse:              "seahorse",
	IconChateauRomani:         "chateau_romani",
	IconHylianLoach:           "hylian_loach",
	IconDekuMask:              "deku_mask",
	IconGoronMask:             "goron_mask",
	IconZoraMask:              "zora_mask",
	IconFierceDeityMask:       "fierce_deity_mask",
	IconMaskOfTruth:           "mask_of_truth",
	IconKafeisMask:            "kafeis_mask",
	IconAllNightMask:          "all_night_mask",
	IconBunnyHood:             "bunny_hood",
	IconKeatonMask:            "keaton_mask",
	IconGaroMask:              "garo_mask",
	IconRomaniMask:            "romani_mask",
	IconCircusLeadersMask:     "circus_leaders_mask",
	IconPostmansHat:           "postmans_hat",
	IconCouplesMask:           "couples_mask",
	IconGreatFairysMask:       "great_fairys_mask",
	IconGibdoMask:             "gibdo_mask",
	IconDonGerosMask:          "don_geros_mask",
	IconKamarosMask:           "kamaros_mask",
	IconCaptainsHat:           "captains_hat",
	IconStoneMask:             "stone_mask",
	IconBremenMask:            "bremen_mask",
	IconBlastMask:             "blast_mask",
	IconMaskOfScents:          "mask_of_scents",
	IconGiantsMask:            "giants_mask",
	IconChateauRomani1:        "chateau_romani_1",
	IconMilk1:                 "milk_1",
	IconGoldDust1:             "gold_dust_1",
	IconHylianLoach1:          "hylian_loach_1",
	IconSeahorse1:             "seahorse_1",
	IconMoonsTear:             "moons_tear",
	IconTownTitleDeed:         "town_title_deed",
	IconSwampTitleDeed:        "swamp_title_deed",
	IconMountainTitleDeed:     "mountain_title_deed",
	IconOceanTitleDeed:        "ocean_title_deed",
	IconRoomKey:               "room_key",
	IconSpecialDeliveryToMama: "special_delivery_to_mama",
	IconLetterToKafei:         "letter_to_kafei",
	IconPendantOfMemories:     "pendant_of_memories",
	IconTinglesMap:            "tingles_map",
	IconTinglesMap1:           "tingles_map_1",
	IconTinglesMap2:           "tingles_map_2",
	IconTinglesMap3:           "tingles_map_3",
	IconTinglesMap4:           "tingles_map_4",
	IconTinglesMap5:           "tingles_map_5",
	IconTinglesMap6:           "tingles_map_6",
	IconSmallBlackLine:        "small_black_line",
	IconSmallBlackLine1:       "small_black_line_1",
	IconSmallBlackLine2:       "small_black_line_2",
	IconSmallBlackLine3:       "small_black_line_3",
	IconAnju:                  "anju",
	IconKafei:                 "kafei",
	IconCuriosityShopOwner:    "curiosity_shop_owner",
	IconBombShopOwnersMother:  "bomb_shop_owners_mother",
	IconRomani:                "romani",
	IconCremia:                "cremia",
	IconMayorDotour:           "mayor_dotour",
	IconMadameAroma:           "madame_aroma",
	IconToto:                  "toto",
	IconGorman:                "gorman",
	IconPostman:               "postman",
	IconRosaSisters:           "rosa_sisters",
	IconToiletHand:            "toilet_hand",
	IconGranny:                "granny",
	IconKamaro:                "kamaro",
	IconGrog:                  "grog",
	IconGormanBrothers:        "gorman_brothers",
	IconShiro:                 "shiro",
	IconGuruGuru:              "guru_guru",
	IconBombers:               "bombers",
	IconExclamationMark:       "exclamation_mark",
	IconNoIcon:                "no_icon",
}

// String returns the icon's name, or "nothing_0xNN" for unnamed slots.
func (i Icon) String() string {
	if s, ok := iconNames[i]; ok {
		return s
	}
	return fmt.Sprintf("nothing_0x%02X", uint8(i))
}
